package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AmountTolerance is the largest stored-vs-computed difference treated
// as "in sync". Amount comparisons across the reconciliation core use
// the same cent tolerance.
var AmountTolerance = decimal.New(1, -2) // 0.01

// SyncResult is the outcome of comparing an account's stored balance
// against the balance recomputed from its transaction stream.
type SyncResult struct {
	NeedsUpdate      bool
	CorrectedBalance decimal.Decimal
	Difference       decimal.Decimal
}

// CheckBalance recomputes the account balance from the anchored
// transaction stream and decides whether the stored balance drifted
// beyond tolerance. With no anchored transactions the check is a no-op.
// Re-running after a correction reports no update: the sweep is
// idempotent.
func CheckBalance(account *Account, transactions []Transaction) SyncResult {
	var anchored []Transaction
	for _, tx := range transactions {
		if account.InAuthoritativeRange(tx.Date) {
			anchored = append(anchored, tx)
		}
	}

	if len(anchored) == 0 {
		return SyncResult{}
	}

	sort.SliceStable(anchored, func(i, j int) bool {
		return anchored[i].Date.Before(anchored[j].Date)
	})

	computed := account.InitialBalance
	for _, tx := range anchored {
		computed = computed.Add(tx.Signed())
	}

	difference := computed.Sub(account.Balance)
	if difference.Abs().LessThanOrEqual(AmountTolerance) {
		return SyncResult{Difference: difference}
	}

	return SyncResult{
		NeedsUpdate:      true,
		CorrectedBalance: computed,
		Difference:       difference,
	}
}
