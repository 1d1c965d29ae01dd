package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/metrics"
)

// BalanceUseCase runs the balance drift sweep: compare the stored
// account balance against the value recomputed from the transaction
// stream and write a correction when they disagree beyond tolerance.
type BalanceUseCase struct {
	accountRepo  AccountRepository
	expenseRepo  ExpenseRepository
	paymentRepo  PaymentRepository
	transferRepo TransferRepository
	auditRepo    AuditRepository
	retrier      Retrier
	idGen        IDGenerator
	clock        Clock
	logger       zerolog.Logger
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(
	accountRepo AccountRepository,
	expenseRepo ExpenseRepository,
	paymentRepo PaymentRepository,
	transferRepo TransferRepository,
	auditRepo AuditRepository,
	retrier Retrier,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo:  accountRepo,
		expenseRepo:  expenseRepo,
		paymentRepo:  paymentRepo,
		transferRepo: transferRepo,
		auditRepo:    auditRepo,
		retrier:      retrier,
		idGen:        idGen,
		clock:        clock,
		logger:       logger,
	}
}

// CheckAndReconcile loads the account and its transaction stream, then
// runs the sweep. This is the explicit entrypoint for the sync endpoint
// and CLI; the statement path reuses Reconcile with an already-loaded
// feed.
func (uc *BalanceUseCase) CheckAndReconcile(ctx context.Context, accountID string) (domain.SyncResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.SyncResult{}, err
	}

	feed, err := loadAccountFeed(ctx, account, uc.expenseRepo, uc.paymentRepo, uc.transferRepo)
	if err != nil {
		return domain.SyncResult{}, err
	}

	return uc.Reconcile(ctx, account, feed)
}

// Reconcile applies the pure drift check over an already-loaded feed
// and, when needed, writes the corrected balance. Re-running when in
// sync is a no-op.
func (uc *BalanceUseCase) Reconcile(ctx context.Context, account *domain.Account, feed []domain.Transaction) (domain.SyncResult, error) {
	result := domain.CheckBalance(account, feed)
	if !result.NeedsUpdate {
		return result, nil
	}

	now := uc.clock.Now()

	err := uc.retrier.Retry(ctx, func() error {
		return uc.accountRepo.UpdateBalance(ctx, account.ID, result.CorrectedBalance, now)
	})
	if err != nil {
		return result, err
	}

	uc.logger.Info().
		Str("account_id", account.ID).
		Str("stored", account.Balance.String()).
		Str("corrected", result.CorrectedBalance.String()).
		Msg("account balance corrected")
	metrics.BalanceCorrections.Inc()

	uc.audit(ctx, account, result, now)

	return result, nil
}

// audit records the correction. Audit failures are logged and dropped:
// the correction itself already happened.
func (uc *BalanceUseCase) audit(ctx context.Context, account *domain.Account, result domain.SyncResult, now time.Time) {
	entry := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       domain.AuditActionBalanceCorrect,
		ResourceType: "account",
		ResourceID:   account.ID,
		BeforeState:  domain.MarshalState(account),
		AfterState:   domain.MarshalState(result),
		Status:       domain.AuditStatusSuccess,
		CreatedAt:    now,
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn().Err(err).Str("account_id", account.ID).Msg("failed to audit balance correction")
	}
}
