// Package clock provides the wall clock behind the usecase Clock port.
package clock

import "time"

// UTC is a wall clock that reports UTC times.
type UTC struct{}

// New creates a UTC clock.
func New() UTC {
	return UTC{}
}

// Now returns the current UTC time.
func (UTC) Now() time.Time {
	return time.Now().UTC()
}
