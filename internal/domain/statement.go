package domain

import (
	"sort"
)

// BuildStatement computes the newest-first statement view of an account:
// every transaction annotated with its chronological running balance,
// plus one synthesized row for the initial balance at the anchor date.
//
// Transactions dated before the anchor are shown after the anchored
// history with no running balance, since no balance is defined for them.
// A transaction dated exactly on the anchor date participates in the
// fold. Same-date entries keep their feed order (stable sorts only).
func BuildStatement(account *Account, transactions []Transaction) []DisplayTransaction {
	var before, anchored []Transaction
	for _, tx := range transactions {
		if account.InAuthoritativeRange(tx.Date) {
			anchored = append(anchored, tx)
		} else {
			before = append(before, tx)
		}
	}

	// Informational history: newest-first, no balance.
	sort.SliceStable(before, func(i, j int) bool {
		return before[i].Date.After(before[j].Date)
	})

	beforeRows := make([]DisplayTransaction, 0, len(before))
	for _, tx := range before {
		beforeRows = append(beforeRows, DisplayTransaction{
			Transaction:       tx,
			RunningBalance:    nil,
			BeforeInitialDate: true,
		})
	}

	// Anchored history: fold oldest-first from the initial balance.
	sort.SliceStable(anchored, func(i, j int) bool {
		return anchored[i].Date.Before(anchored[j].Date)
	})

	balance := account.InitialBalance
	anchoredRows := make([]DisplayTransaction, 0, len(anchored)+1)
	for _, tx := range anchored {
		balance = balance.Add(tx.Signed())

		running := balance
		anchoredRows = append(anchoredRows, DisplayTransaction{
			Transaction:    tx,
			RunningBalance: &running,
		})
	}

	// Newest-first for display.
	for i, j := 0, len(anchoredRows)-1; i < j; i, j = i+1, j-1 {
		anchoredRows[i], anchoredRows[j] = anchoredRows[j], anchoredRows[i]
	}

	anchoredRows = insertInitialRow(account, anchoredRows)

	return append(anchoredRows, beforeRows...)
}

// insertInitialRow slots the synthesized initial-balance row into the
// newest-first anchored sequence, immediately before the first entry
// dated on or before the anchor. When every entry is newer it lands at
// the end, the oldest display position.
func insertInitialRow(account *Account, rows []DisplayTransaction) []DisplayTransaction {
	initialBalance := account.InitialBalance
	initial := DisplayTransaction{
		Transaction: Transaction{
			ID:          "initial-" + account.ID,
			Date:        account.BalanceDate,
			Description: "Saldo inicial",
			Amount:      account.InitialBalance,
			Direction:   DirectionIn,
		},
		RunningBalance:   &initialBalance,
		IsInitialBalance: true,
	}

	for i, row := range rows {
		if !row.Date.After(account.BalanceDate) {
			out := make([]DisplayTransaction, 0, len(rows)+1)
			out = append(out, rows[:i]...)
			out = append(out, initial)
			out = append(out, rows[i:]...)
			return out
		}
	}

	return append(rows, initial)
}
