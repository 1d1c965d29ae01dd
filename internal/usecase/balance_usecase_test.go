package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
	"github.com/juliosil99/demayoreoerp/internal/usecase/mocks"
)

func fixedTime() time.Time {
	return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
}

func balanceFixture() (*usecase.BalanceUseCase, *mocks.MockAccountRepository, *mocks.MockExpenseRepository, *mocks.MockPaymentRepository, *mocks.MockAuditRepository) {
	accountRepo := mocks.NewMockAccountRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	paymentRepo := mocks.NewMockPaymentRepository()
	transferRepo := mocks.NewMockTransferRepository()
	auditRepo := mocks.NewMockAuditRepository()

	uc := usecase.NewBalanceUseCase(
		accountRepo, expenseRepo, paymentRepo, transferRepo, auditRepo,
		mocks.NewMockRetrier(), mocks.NewMockIDGenerator(), mocks.NewMockClock(fixedTime()), zerolog.Nop(),
	)

	return uc, accountRepo, expenseRepo, paymentRepo, auditRepo
}

func seedAccount(repo *mocks.MockAccountRepository, balance int64) *domain.Account {
	account := &domain.Account{
		ID:             "acc-1",
		Currency:       domain.CurrencyMXN,
		InitialBalance: decimal.NewFromInt(1000),
		BalanceDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Balance:        decimal.NewFromInt(balance),
	}
	repo.Seed(account)
	return account
}

func TestBalanceUseCase_CheckAndReconcile_CorrectsDrift(t *testing.T) {
	uc, accountRepo, _, paymentRepo, auditRepo := balanceFixture()
	seedAccount(accountRepo, 900)

	paymentRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
		return []domain.PaymentRecord{
			{ID: "p1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ClientName: "ACME", Amount: decimal.NewFromInt(200)},
		}, nil
	}

	result, err := uc.CheckAndReconcile(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.NeedsUpdate {
		t.Fatal("expected a correction")
	}
	if !result.CorrectedBalance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected corrected balance 1200, got %s", result.CorrectedBalance)
	}

	// The write went through and was audited.
	updated, _ := accountRepo.GetByID(context.Background(), "acc-1")
	if !updated.Balance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("stored balance not corrected: %s", updated.Balance)
	}
	if len(auditRepo.Entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(auditRepo.Entries))
	}
	if auditRepo.Entries[0].Action != domain.AuditActionBalanceCorrect {
		t.Errorf("unexpected audit action %s", auditRepo.Entries[0].Action)
	}
}

func TestBalanceUseCase_CheckAndReconcile_AuditsStateSnapshots(t *testing.T) {
	uc, accountRepo, _, paymentRepo, auditRepo := balanceFixture()
	seedAccount(accountRepo, 900)

	paymentRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
		return []domain.PaymentRecord{
			{ID: "p1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
		}, nil
	}
	accountRepo.UpdateBalanceFunc = func(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
		return nil
	}

	if _, err := uc.CheckAndReconcile(context.Background(), "acc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(auditRepo.Entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(auditRepo.Entries))
	}
	entry := auditRepo.Entries[0]
	if entry.BeforeState["Balance"] != "900" {
		t.Errorf("before state must snapshot the drifted account, got %v", entry.BeforeState)
	}
	if entry.AfterState["CorrectedBalance"] != "1200" {
		t.Errorf("after state must snapshot the sync result, got %v", entry.AfterState)
	}
}

func TestBalanceUseCase_CheckAndReconcile_NoOpWhenInSync(t *testing.T) {
	uc, accountRepo, _, paymentRepo, auditRepo := balanceFixture()
	seedAccount(accountRepo, 1200)

	paymentRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
		return []domain.PaymentRecord{
			{ID: "p1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
		}, nil
	}

	updateCalled := false
	accountRepo.UpdateBalanceFunc = func(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
		updateCalled = true
		return nil
	}

	result, err := uc.CheckAndReconcile(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NeedsUpdate {
		t.Error("expected no update")
	}
	if updateCalled {
		t.Error("UpdateBalance must not be called when in sync")
	}
	if len(auditRepo.Entries) != 0 {
		t.Error("no audit entry expected for a no-op sweep")
	}
}

func TestBalanceUseCase_CheckAndReconcile_Idempotent(t *testing.T) {
	uc, accountRepo, _, paymentRepo, _ := balanceFixture()
	seedAccount(accountRepo, 900)

	paymentRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
		return []domain.PaymentRecord{
			{ID: "p1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
		}, nil
	}

	first, err := uc.CheckAndReconcile(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.NeedsUpdate {
		t.Fatal("expected a correction on first run")
	}

	second, err := uc.CheckAndReconcile(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.NeedsUpdate {
		t.Error("second run must be a no-op")
	}
}

func TestBalanceUseCase_CheckAndReconcile_WriteFailure(t *testing.T) {
	uc, accountRepo, _, paymentRepo, _ := balanceFixture()
	seedAccount(accountRepo, 900)

	paymentRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
		return []domain.PaymentRecord{
			{ID: "p1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(200)},
		}, nil
	}
	accountRepo.UpdateBalanceFunc = func(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
		return errors.New("connection reset")
	}

	if _, err := uc.CheckAndReconcile(context.Background(), "acc-1"); err == nil {
		t.Fatal("expected error when the corrective write fails")
	}
}

func TestBalanceUseCase_CheckAndReconcile_AccountNotFound(t *testing.T) {
	uc, _, _, _, _ := balanceFixture()

	_, err := uc.CheckAndReconcile(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestBalanceUseCase_CheckAndReconcile_FeedLoadFailure(t *testing.T) {
	uc, accountRepo, expenseRepo, _, _ := balanceFixture()
	seedAccount(accountRepo, 900)

	expenseRepo.ListByAccountFunc = func(ctx context.Context, accountID string) ([]domain.ExpenseRecord, error) {
		return nil, errors.New("query timeout")
	}

	if _, err := uc.CheckAndReconcile(context.Background(), "acc-1"); err == nil {
		t.Fatal("expected error when a source read fails")
	}
}
