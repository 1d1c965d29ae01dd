package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code. Only MXN and USD are modeled;
// MXN is the fixed base currency for cross-currency comparisons.
type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"

	// BaseCurrency is the currency every cross-currency comparison is
	// normalized to.
	BaseCurrency = CurrencyMXN
)

// Convert converts amount from one currency to another using rate, the
// MXN price of one USD. Same-currency conversion is the identity and
// never consults the rate. A pair outside the MXN/USD model is returned
// unchanged. A conversion that actually needs the rate fails with
// ErrInvalidExchangeRate when rate is not positive.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	switch {
	case from == CurrencyUSD && to == CurrencyMXN:
		if rate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidExchangeRate, rate)
		}
		return amount.Mul(rate), nil

	case from == CurrencyMXN && to == CurrencyUSD:
		if rate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidExchangeRate, rate)
		}
		return amount.Div(rate), nil

	default:
		// Unmodeled pair: pass through untouched.
		return amount, nil
	}
}
