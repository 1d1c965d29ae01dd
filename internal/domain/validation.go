package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCurrency = fmt.Errorf("invalid currency code")
	ErrAmountTooLarge  = fmt.Errorf("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxAmount = "1000000000000" // 1 trillion

	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// Currencies the reconciliation core models. Everything else is rejected
// at the boundary rather than silently passed through.
var validCurrencies = map[Currency]bool{
	CurrencyMXN: true,
	CurrencyUSD: true,
}

// ValidateCurrency validates a currency code against the modeled set.
func ValidateCurrency(currency Currency) error {
	c := Currency(strings.ToUpper(strings.TrimSpace(string(currency))))

	if !validCurrencies[c] {
		return fmt.Errorf("%w: %s is not supported", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates a monetary magnitude.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
