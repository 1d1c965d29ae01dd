package domain

import (
	"fmt"
	"time"
)

// ReconciliationSession is the in-progress basket of invoices an
// operator is matching against one expense. It is a plain value object:
// callers persist it between steps, the methods only transform it.
// Single-operator use is assumed; two operators reconciling the same
// expense concurrently is not guarded here.
type ReconciliationSession struct {
	ID        string
	Expense   ExpenseRecord
	Selected  []InvoiceCandidate
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Add puts an invoice into the basket. The invoice currency must equal
// the expense currency (mixed-currency baskets are rejected), the
// invoice must still have amount left to apply, and it must not already
// be selected. On rejection the selection is unchanged.
func (s *ReconciliationSession) Add(invoice InvoiceCandidate, now time.Time) error {
	if invoice.Currency != s.Expense.Currency {
		return fmt.Errorf("%w: invoice is %s, expense is %s",
			ErrCurrencyMismatch, invoice.Currency, s.Expense.Currency)
	}

	if invoice.FullyApplied() {
		return ErrInvoiceAlreadyApplied
	}

	for _, sel := range s.Selected {
		if sel.ID == invoice.ID {
			return fmt.Errorf("invoice %s already selected", invoice.ID)
		}
	}

	s.Selected = append(s.Selected, invoice)
	s.UpdatedAt = now

	return nil
}

// Remove takes an invoice out of the basket.
func (s *ReconciliationSession) Remove(invoiceID string, now time.Time) error {
	for i, sel := range s.Selected {
		if sel.ID == invoiceID {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			s.UpdatedAt = now
			return nil
		}
	}

	return ErrInvoiceNotSelected
}

// Summary accumulates the current selection against the expense.
func (s *ReconciliationSession) Summary() (Selection, error) {
	return AccumulateSelection(&s.Expense, s.Selected)
}
