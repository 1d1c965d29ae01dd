package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// loadAccountFeed fans out the four independent source reads for an
// account and merges the normalized results into one date-descending
// feed. The reads have no ordering dependency between them.
func loadAccountFeed(
	ctx context.Context,
	account *domain.Account,
	expenseRepo ExpenseRepository,
	paymentRepo PaymentRepository,
	transferRepo TransferRepository,
) ([]domain.Transaction, error) {
	var (
		expenses []domain.ExpenseRecord
		payments []domain.PaymentRecord
		outgoing []domain.TransferRecord
		incoming []domain.TransferRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		expenses, err = expenseRepo.ListByAccount(gctx, account.ID)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = paymentRepo.ListByAccount(gctx, account.ID)
		return err
	})
	g.Go(func() error {
		var err error
		outgoing, err = transferRepo.ListOutgoing(gctx, account.ID)
		return err
	})
	g.Go(func() error {
		var err error
		incoming, err = transferRepo.ListIncoming(gctx, account.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return domain.MergeFeed(
		domain.ExpensesToTransactions(expenses, account.Currency),
		domain.PaymentsToTransactions(payments),
		domain.TransfersOutToTransactions(outgoing, account.Currency),
		domain.TransfersInToTransactions(incoming, account.Currency),
	), nil
}
