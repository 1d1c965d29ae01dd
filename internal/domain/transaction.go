package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction encodes which way money moves relative to the account.
// Amounts are always non-negative magnitudes; direction is never
// carried by sign.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Source identifies the kind of record a transaction was derived from.
type Source string

const (
	SourceExpense  Source = "expense"
	SourcePayment  Source = "payment"
	SourceTransfer Source = "transfer"
)

// Transaction is the unified read-side shape of an account movement. It
// is derived from expense, payment and transfer rows and never persisted
// as such.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	Reference   string
	Source      Source
	SourceID    string

	// Set only when the source record is denominated in a currency other
	// than the account's; kept for display alongside the converted amount.
	ExchangeRate     *decimal.Decimal
	OriginalAmount   *decimal.Decimal
	OriginalCurrency Currency
}

// Signed returns the amount with direction applied: positive for money
// in, negative for money out.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Direction == DirectionOut {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DisplayTransaction is a Transaction annotated with its running balance
// for statement rendering. RunningBalance is nil for entries dated before
// the account's balance anchor, where no balance is defined.
type DisplayTransaction struct {
	Transaction
	RunningBalance    *decimal.Decimal
	BeforeInitialDate bool
	IsInitialBalance  bool
}
