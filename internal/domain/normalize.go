package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is a raw expense row as stored. Amount is the stored
// amount in the account currency (converted at capture time when the
// expense was denominated in another currency); OriginalAmount carries
// the uncoverted figure when it was kept.
type ExpenseRecord struct {
	ID             string
	Date           time.Time
	Description    string
	Reference      string
	Amount         decimal.Decimal
	OriginalAmount *decimal.Decimal
	Currency       Currency
	ExchangeRate   *decimal.Decimal
	Reconciled     bool
}

// PaymentRecord is a raw client payment row.
type PaymentRecord struct {
	ID         string
	Date       time.Time
	Notes      string
	ClientName string
	Reference  string
	Amount     decimal.Decimal
}

// TransferRecord is a raw transfer row between two accounts. AmountFrom
// is denominated in the source account currency, AmountTo in the
// destination account currency.
type TransferRecord struct {
	ID            string
	Date          time.Time
	Reference     string
	FromAccountID string
	ToAccountID   string
	AmountFrom    decimal.Decimal
	AmountTo      decimal.Decimal
	FromCurrency  Currency
	ToCurrency    Currency
	ExchangeRate  *decimal.Decimal
}

// ExpensesToTransactions maps expense rows into unified outgoing
// transactions for an account held in accountCurrency.
//
// Amount selection: when the expense currency matches the account
// currency the uncoverted original amount wins if it was kept, otherwise
// the stored amount. When the currencies differ the stored (converted)
// amount is used and the exchange fields are carried for display.
func ExpensesToTransactions(expenses []ExpenseRecord, accountCurrency Currency) []Transaction {
	txs := make([]Transaction, 0, len(expenses))

	for _, e := range expenses {
		tx := Transaction{
			ID:          "expense-" + e.ID,
			Date:        e.Date,
			Description: e.Description,
			Direction:   DirectionOut,
			Reference:   e.Reference,
			Source:      SourceExpense,
			SourceID:    e.ID,
		}

		if e.Currency == accountCurrency {
			if e.OriginalAmount != nil {
				tx.Amount = *e.OriginalAmount
			} else {
				tx.Amount = e.Amount
			}
		} else {
			tx.Amount = e.Amount
			tx.ExchangeRate = e.ExchangeRate
			tx.OriginalAmount = e.OriginalAmount
			tx.OriginalCurrency = e.Currency
		}

		txs = append(txs, tx)
	}

	return txs
}

// PaymentsToTransactions maps client payment rows into unified incoming
// transactions.
func PaymentsToTransactions(payments []PaymentRecord) []Transaction {
	txs := make([]Transaction, 0, len(payments))

	for _, p := range payments {
		description := p.Notes
		if description == "" {
			description = "Pago de " + p.ClientName
		}

		txs = append(txs, Transaction{
			ID:          "payment-" + p.ID,
			Date:        p.Date,
			Description: description,
			Amount:      p.Amount,
			Direction:   DirectionIn,
			Reference:   p.Reference,
			Source:      SourcePayment,
			SourceID:    p.ID,
		})
	}

	return txs
}

// TransfersOutToTransactions maps transfers leaving the account. The
// amount is always the source-account leg (AmountFrom), whatever the
// destination currency is.
func TransfersOutToTransactions(transfers []TransferRecord, accountCurrency Currency) []Transaction {
	txs := make([]Transaction, 0, len(transfers))

	for _, tr := range transfers {
		tx := Transaction{
			ID:          "transfer-out-" + tr.ID,
			Date:        tr.Date,
			Description: "Transferencia enviada",
			Amount:      tr.AmountFrom,
			Direction:   DirectionOut,
			Reference:   tr.Reference,
			Source:      SourceTransfer,
			SourceID:    tr.ID,
		}

		if tr.ToCurrency != accountCurrency {
			amountTo := tr.AmountTo
			tx.ExchangeRate = tr.ExchangeRate
			tx.OriginalAmount = &amountTo
			tx.OriginalCurrency = tr.ToCurrency
		}

		txs = append(txs, tx)
	}

	return txs
}

// TransfersInToTransactions maps transfers arriving at the account. An
// incoming transfer is always DirectionIn with the destination-account
// leg (AmountTo) as its amount.
func TransfersInToTransactions(transfers []TransferRecord, accountCurrency Currency) []Transaction {
	txs := make([]Transaction, 0, len(transfers))

	for _, tr := range transfers {
		tx := Transaction{
			ID:          "transfer-in-" + tr.ID,
			Date:        tr.Date,
			Description: "Transferencia recibida",
			Amount:      tr.AmountTo,
			Direction:   DirectionIn,
			Reference:   tr.Reference,
			Source:      SourceTransfer,
			SourceID:    tr.ID,
		}

		if tr.FromCurrency != accountCurrency {
			amountFrom := tr.AmountFrom
			tx.ExchangeRate = tr.ExchangeRate
			tx.OriginalAmount = &amountFrom
			tx.OriginalCurrency = tr.FromCurrency
		}

		txs = append(txs, tx)
	}

	return txs
}

// MergeFeed concatenates per-source transaction lists into one feed
// sorted newest-first. The sort is stable so same-date entries keep the
// concatenation order.
func MergeFeed(lists ...[]Transaction) []Transaction {
	var merged []Transaction
	for _, l := range lists {
		merged = append(merged, l...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	return merged
}
