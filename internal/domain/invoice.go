package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes regular invoices from credit notes. Credit
// notes (CFDI type "E") reduce the amount owed and contribute negative
// comparable amounts to a selection.
type InvoiceType string

const (
	InvoiceTypeNormal     InvoiceType = "normal"
	InvoiceTypeCreditNote InvoiceType = "E"
)

// InvoiceCandidate is an invoice or credit note offered for matching
// against an expense.
type InvoiceCandidate struct {
	ID           string
	TotalAmount  decimal.Decimal
	InvoiceType  InvoiceType
	Currency     Currency
	ExchangeRate *decimal.Decimal
	PaidAmount   decimal.Decimal
}

// FullyApplied reports whether the invoice has no remaining amount to
// match against.
func (i *InvoiceCandidate) FullyApplied() bool {
	return i.PaidAmount.Abs().GreaterThanOrEqual(i.TotalAmount.Abs())
}

func (i *InvoiceCandidate) exchangeRate() decimal.Decimal {
	if i.ExchangeRate == nil {
		return decimal.Zero
	}
	return *i.ExchangeRate
}

func expenseExchangeRate(e *ExpenseRecord) decimal.Decimal {
	if e.ExchangeRate == nil {
		return decimal.Zero
	}
	return *e.ExchangeRate
}

// Comparison holds the amounts of one expense/invoice pair brought onto
// a common basis: raw when the currencies already match, both normalized
// to the base currency otherwise.
type Comparison struct {
	ExpenseAmount decimal.Decimal
	InvoiceAmount decimal.Decimal
	Converted     bool
}

// CompareAmounts puts an expense and an invoice on a comparable basis.
func CompareAmounts(expense *ExpenseRecord, invoice *InvoiceCandidate) (Comparison, error) {
	if expense.Currency == invoice.Currency {
		return Comparison{
			ExpenseAmount: expense.Amount,
			InvoiceAmount: invoice.TotalAmount,
		}, nil
	}

	expenseAmount, err := Convert(expense.Amount, expense.Currency, BaseCurrency, expenseExchangeRate(expense))
	if err != nil {
		return Comparison{}, err
	}

	invoiceAmount, err := Convert(invoice.TotalAmount, invoice.Currency, BaseCurrency, invoice.exchangeRate())
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		ExpenseAmount: expenseAmount,
		InvoiceAmount: invoiceAmount,
		Converted:     true,
	}, nil
}

// Selection is the accumulated result of matching a set of invoices
// against one expense.
type Selection struct {
	TotalSelectedAmount decimal.Decimal
	RemainingAmount     decimal.Decimal
	Converted           bool
}

// PerfectMatch reports whether the remainder is within tolerance, in
// which case the reconciliation closes with no adjustment.
func (s Selection) PerfectMatch() bool {
	return s.RemainingAmount.Abs().LessThanOrEqual(AmountTolerance)
}

// AccumulateSelection sums the signed comparable amounts of the selected
// invoices (credit notes negated) and computes the remainder against the
// expense. The expense side uses the same base-currency basis whenever
// any invoice comparison required conversion.
func AccumulateSelection(expense *ExpenseRecord, invoices []InvoiceCandidate) (Selection, error) {
	var selection Selection

	total := decimal.Zero
	for i := range invoices {
		cmp, err := CompareAmounts(expense, &invoices[i])
		if err != nil {
			return Selection{}, err
		}

		amount := cmp.InvoiceAmount
		if invoices[i].InvoiceType == InvoiceTypeCreditNote {
			amount = amount.Neg()
		}

		total = total.Add(amount)
		selection.Converted = selection.Converted || cmp.Converted
	}

	expenseAmount := expense.Amount
	if selection.Converted {
		converted, err := Convert(expense.Amount, expense.Currency, BaseCurrency, expenseExchangeRate(expense))
		if err != nil {
			return Selection{}, err
		}
		expenseAmount = converted
	}

	selection.TotalSelectedAmount = total
	selection.RemainingAmount = expenseAmount.Sub(total)

	return selection, nil
}

// AdjustmentType classifies the residual of an imperfect match.
type AdjustmentType string

const (
	// AdjustmentExpenseExcess: more was paid than invoiced; the residual
	// is recorded as an advance to the supplier.
	AdjustmentExpenseExcess AdjustmentType = "expense_excess"
	// AdjustmentInvoiceExcess: more was invoiced than paid; the residual
	// is recorded as a payable.
	AdjustmentInvoiceExcess AdjustmentType = "invoice_excess"
)

// RequiredAdjustment decides whether closing with this selection needs
// an accounting adjustment, and of which type.
func (s Selection) RequiredAdjustment() (AdjustmentType, bool) {
	if s.PerfectMatch() {
		return "", false
	}

	if s.RemainingAmount.IsPositive() {
		return AdjustmentExpenseExcess, true
	}

	return AdjustmentInvoiceExcess, true
}

// AccountingAdjustment records the residual of an imperfect
// reconciliation. Amount is always the magnitude of the remainder.
type AccountingAdjustment struct {
	ID             string
	ExpenseID      string
	Amount         decimal.Decimal
	Type           AdjustmentType
	ChartAccountID string
	Notes          string
	CreatedAt      time.Time
}

// ExpenseInvoiceRelation links one reconciled expense to one applied
// invoice with the amount that was applied to it.
type ExpenseInvoiceRelation struct {
	ID            string
	ExpenseID     string
	InvoiceID     string
	AppliedAmount decimal.Decimal
	CreatedAt     time.Time
}
