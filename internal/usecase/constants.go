package usecase

import "time"

const (
	// DefaultSessionTTL is how long an idle reconciliation session
	// survives in the cache before the basket is discarded.
	DefaultSessionTTL = 2 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// sessionKeyPrefix namespaces session entries in the cache.
	sessionKeyPrefix = "reconciliation:session:"
)
