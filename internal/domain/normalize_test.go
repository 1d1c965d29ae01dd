package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestExpensesToTransactions(t *testing.T) {
	original := decimal.NewFromInt(100)
	rate := decimal.NewFromFloat(17.5)

	tests := []struct {
		name           string
		expense        ExpenseRecord
		wantAmount     decimal.Decimal
		wantAnnotation bool
	}{
		{
			name: "same currency prefers original amount",
			expense: ExpenseRecord{
				ID:             "e1",
				Amount:         decimal.NewFromInt(99),
				OriginalAmount: &original,
				Currency:       CurrencyMXN,
			},
			wantAmount: original,
		},
		{
			name: "same currency without original uses stored amount",
			expense: ExpenseRecord{
				ID:       "e2",
				Amount:   decimal.NewFromInt(250),
				Currency: CurrencyMXN,
			},
			wantAmount: decimal.NewFromInt(250),
		},
		{
			name: "foreign currency keeps converted amount with annotation",
			expense: ExpenseRecord{
				ID:             "e3",
				Amount:         decimal.NewFromInt(1750),
				OriginalAmount: &original,
				Currency:       CurrencyUSD,
				ExchangeRate:   &rate,
			},
			wantAmount:     decimal.NewFromInt(1750),
			wantAnnotation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs := ExpensesToTransactions([]ExpenseRecord{tt.expense}, CurrencyMXN)
			if len(txs) != 1 {
				t.Fatalf("expected 1 transaction, got %d", len(txs))
			}

			tx := txs[0]
			if tx.ID != "expense-"+tt.expense.ID {
				t.Errorf("unexpected ID %q", tx.ID)
			}
			if tx.Direction != DirectionOut {
				t.Errorf("expected outgoing direction, got %s", tx.Direction)
			}
			if tx.Source != SourceExpense {
				t.Errorf("expected expense source, got %s", tx.Source)
			}
			if !tx.Amount.Equal(tt.wantAmount) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, tx.Amount)
			}

			if tt.wantAnnotation {
				if tx.ExchangeRate == nil || tx.OriginalAmount == nil || tx.OriginalCurrency == "" {
					t.Error("expected exchange annotation to be carried")
				}
			} else if tx.OriginalCurrency != "" {
				t.Error("unexpected exchange annotation on same-currency expense")
			}
		})
	}
}

func TestPaymentsToTransactions_DescriptionFallback(t *testing.T) {
	payments := []PaymentRecord{
		{ID: "p1", Notes: "Abono marzo", ClientName: "ACME", Amount: decimal.NewFromInt(100)},
		{ID: "p2", ClientName: "ACME", Amount: decimal.NewFromInt(200)},
	}

	txs := PaymentsToTransactions(payments)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}

	if txs[0].Description != "Abono marzo" {
		t.Errorf("expected notes description, got %q", txs[0].Description)
	}
	if txs[1].Description != "Pago de ACME" {
		t.Errorf("expected client fallback description, got %q", txs[1].Description)
	}
	for _, tx := range txs {
		if tx.Direction != DirectionIn {
			t.Errorf("expected incoming direction, got %s", tx.Direction)
		}
	}
}

func TestTransfersOutToTransactions_AlwaysSourceLeg(t *testing.T) {
	rate := decimal.NewFromFloat(17.5)
	transfers := []TransferRecord{
		{
			ID:           "t1",
			AmountFrom:   decimal.NewFromInt(1750),
			AmountTo:     decimal.NewFromInt(100),
			FromCurrency: CurrencyMXN,
			ToCurrency:   CurrencyUSD,
			ExchangeRate: &rate,
		},
	}

	txs := TransfersOutToTransactions(transfers, CurrencyMXN)
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}

	tx := txs[0]
	if !tx.Amount.Equal(decimal.NewFromInt(1750)) {
		t.Errorf("expected source leg amount 1750, got %s", tx.Amount)
	}
	if tx.Direction != DirectionOut {
		t.Errorf("expected outgoing direction, got %s", tx.Direction)
	}
	if tx.OriginalAmount == nil || !tx.OriginalAmount.Equal(decimal.NewFromInt(100)) {
		t.Error("expected destination leg carried as original amount")
	}
	if tx.OriginalCurrency != CurrencyUSD {
		t.Errorf("expected USD annotation, got %s", tx.OriginalCurrency)
	}
}

func TestTransfersInToTransactions_AlwaysIncoming(t *testing.T) {
	transfers := []TransferRecord{
		{
			ID:           "t1",
			AmountFrom:   decimal.NewFromInt(100),
			AmountTo:     decimal.NewFromInt(1750),
			FromCurrency: CurrencyUSD,
			ToCurrency:   CurrencyMXN,
		},
	}

	txs := TransfersInToTransactions(transfers, CurrencyMXN)
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}

	tx := txs[0]
	if tx.Direction != DirectionIn {
		t.Errorf("incoming transfer must be incoming, got %s", tx.Direction)
	}
	if !tx.Amount.Equal(decimal.NewFromInt(1750)) {
		t.Errorf("expected destination leg amount 1750, got %s", tx.Amount)
	}
	if tx.OriginalAmount == nil || !tx.OriginalAmount.Equal(decimal.NewFromInt(100)) {
		t.Error("expected source leg carried as original amount")
	}
}

func TestMergeFeed_NewestFirstStable(t *testing.T) {
	expenses := []Transaction{
		{ID: "expense-a", Date: date(10), Source: SourceExpense},
		{ID: "expense-b", Date: date(5), Source: SourceExpense},
	}
	payments := []Transaction{
		{ID: "payment-a", Date: date(10), Source: SourcePayment},
		{ID: "payment-b", Date: date(20), Source: SourcePayment},
	}

	merged := MergeFeed(expenses, payments)

	wantOrder := []string{"payment-b", "expense-a", "payment-a", "expense-b"}
	if len(merged) != len(wantOrder) {
		t.Fatalf("expected %d transactions, got %d", len(wantOrder), len(merged))
	}
	for i, id := range wantOrder {
		if merged[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, merged[i].ID)
		}
	}
}

func TestMergeFeed_Empty(t *testing.T) {
	if got := MergeFeed(nil, nil, nil); len(got) != 0 {
		t.Errorf("expected empty feed, got %d entries", len(got))
	}
}
