package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/metrics"
)

// StatementUseCase assembles the running-balance statement view of an
// account from its expense, payment and transfer sources.
type StatementUseCase struct {
	accountRepo  AccountRepository
	expenseRepo  ExpenseRepository
	paymentRepo  PaymentRepository
	transferRepo TransferRepository
	balanceUC    *BalanceUseCase
	logger       zerolog.Logger
}

// NewStatementUseCase creates a new StatementUseCase. balanceUC may be
// nil to disable the background drift sweep.
func NewStatementUseCase(
	accountRepo AccountRepository,
	expenseRepo ExpenseRepository,
	paymentRepo PaymentRepository,
	transferRepo TransferRepository,
	balanceUC *BalanceUseCase,
	logger zerolog.Logger,
) *StatementUseCase {
	return &StatementUseCase{
		accountRepo:  accountRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
		transferRepo: transferRepo,
		balanceUC:    balanceUC,
		logger:       logger,
	}
}

// GetStatement builds the newest-first statement of an account. The
// four source reads are independent and run concurrently. After the
// statement is assembled a balance drift sweep is kicked off in the
// background; it never blocks or fails the read.
func (uc *StatementUseCase) GetStatement(ctx context.Context, accountID string) (*domain.Account, []domain.DisplayTransaction, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	feed, err := loadAccountFeed(ctx, account, uc.expenseRepo, uc.paymentRepo, uc.transferRepo)
	if err != nil {
		return nil, nil, err
	}

	statement := domain.BuildStatement(account, feed)
	metrics.StatementsBuilt.Inc()

	if uc.balanceUC != nil {
		// Fire and forget: the sweep outlives the request context.
		go uc.sweepBalance(context.WithoutCancel(ctx), account, feed)
	}

	return account, statement, nil
}

// sweepBalance runs the drift check and corrective write off the read
// path. A failed write is logged and dropped, never retried here and
// never surfaced to the caller.
func (uc *StatementUseCase) sweepBalance(ctx context.Context, account *domain.Account, feed []domain.Transaction) {
	if _, err := uc.balanceUC.Reconcile(ctx, account, feed); err != nil {
		uc.logger.Warn().
			Err(err).
			Str("account_id", account.ID).
			Msg("background balance sweep failed")
	}
}
