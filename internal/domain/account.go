package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies how an account holds money.
type AccountType string

const (
	AccountTypeBank         AccountType = "Bank"
	AccountTypeCash         AccountType = "Cash"
	AccountTypeCreditCard   AccountType = "CreditCard"
	AccountTypeCreditSimple AccountType = "CreditSimple"
)

// Account represents a bank, cash or credit account whose balance is
// anchored at an initial balance on BalanceDate. Transactions dated
// before BalanceDate are informational only and never participate in
// balance arithmetic.
type Account struct {
	ID             string
	Name           string
	Type           AccountType
	Currency       Currency
	InitialBalance decimal.Decimal
	BalanceDate    time.Time
	Balance        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InAuthoritativeRange reports whether a transaction date is on or after
// the balance anchor. The boundary is inclusive.
func (a *Account) InAuthoritativeRange(date time.Time) bool {
	return !date.Before(a.BalanceDate)
}
