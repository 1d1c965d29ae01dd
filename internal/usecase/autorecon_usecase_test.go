package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
	"github.com/juliosil99/demayoreoerp/internal/usecase/mocks"
)

type autoReconFixture struct {
	uc          *usecase.AutoReconUseCase
	channelRepo *mocks.MockChannelRepository
	saleRepo    *mocks.MockSaleRepository
	paymentRepo *mocks.MockPaymentRepository
	auditRepo   *mocks.MockAuditRepository
}

func newAutoReconFixture() *autoReconFixture {
	f := &autoReconFixture{
		channelRepo: mocks.NewMockChannelRepository(),
		saleRepo:    mocks.NewMockSaleRepository(),
		paymentRepo: mocks.NewMockPaymentRepository(),
		auditRepo:   mocks.NewMockAuditRepository(),
	}

	f.channelRepo.ListFunc = func(ctx context.Context) ([]domain.Channel, error) {
		return []domain.Channel{{ID: "ch1", Name: "Amazon", AutoReconcilable: true}}, nil
	}

	f.uc = usecase.NewAutoReconUseCase(
		f.channelRepo, f.saleRepo, f.paymentRepo, f.auditRepo,
		mocks.NewMockIDGenerator(), mocks.NewMockClock(fixedTime()), zerolog.Nop(),
	)
	return f
}

func testSale(id string, day int, amount int64) domain.Sale {
	d := time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(amount)
	return domain.Sale{
		ID:            id,
		Date:          &d,
		DatePaid:      &d,
		Price:         &price,
		PaymentMethod: "card",
		Channel:       "Amazon",
	}
}

func TestAutoReconUseCase_DetectGroups(t *testing.T) {
	f := newAutoReconFixture()
	f.saleRepo.ListUnreconciledFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			testSale("s1", 5, 100),
			testSale("s2", 5, 200),
			testSale("s3", 6, 50),
		}, nil
	}

	groups, err := f.uc.DetectGroups(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if !groups[0].Date.After(groups[1].Date) {
		t.Error("groups must be newest-first")
	}
}

func TestAutoReconUseCase_DetectGroups_ChannelReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channelRepo := mocks.NewGoMockChannelRepository(ctrl)
	channelRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	uc := usecase.NewAutoReconUseCase(
		channelRepo, mocks.NewMockSaleRepository(), mocks.NewMockPaymentRepository(),
		mocks.NewMockAuditRepository(), mocks.NewMockIDGenerator(), mocks.NewMockClock(fixedTime()), zerolog.Nop(),
	)

	if _, err := uc.DetectGroups(context.Background()); err == nil {
		t.Fatal("expected error when the channel read fails")
	}
}

func TestAutoReconUseCase_ProcessGroup(t *testing.T) {
	f := newAutoReconFixture()
	f.saleRepo.ListUnreconciledFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{
			testSale("s1", 5, 100),
			testSale("s2", 5, 200),
		}, nil
	}

	var created *domain.ConsolidatedPayment
	f.paymentRepo.CreateConsolidatedFunc = func(ctx context.Context, payment *domain.ConsolidatedPayment) error {
		created = payment
		return nil
	}
	var assignedIDs []string
	var assignedTo string
	f.saleRepo.BulkAssignReconciliationFunc = func(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error {
		assignedIDs = saleIDs
		assignedTo = reconciliationID
		return nil
	}

	payment, err := f.uc.ProcessGroup(context.Background(), "2026-03-05__card__Amazon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected a consolidated payment")
	}
	if !payment.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected amount 300, got %s", payment.Amount)
	}
	if len(assignedIDs) != 2 || assignedTo != payment.ID {
		t.Errorf("sales not stamped with payment ID: %v -> %s", assignedIDs, assignedTo)
	}
	if len(f.auditRepo.Entries) != 1 || f.auditRepo.Entries[0].Action != domain.AuditActionAutoReconProcess {
		t.Error("expected one autorecon.process audit entry")
	}
	if f.auditRepo.Entries[0].AfterState["ID"] != payment.ID {
		t.Errorf("audit must snapshot the created payment, got %v", f.auditRepo.Entries[0].AfterState)
	}
}

func TestAutoReconUseCase_ProcessGroup_NotFound(t *testing.T) {
	f := newAutoReconFixture()

	_, err := f.uc.ProcessGroup(context.Background(), "2026-01-01__card__Amazon")
	if !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestAutoReconUseCase_ProcessGroup_RefusesMajorDiscrepancy(t *testing.T) {
	f := newAutoReconFixture()
	f.saleRepo.ListUnreconciledFunc = func(ctx context.Context) ([]domain.Sale, error) {
		s := testSale("s1", 5, 100)
		s.Commission = decimal.NewFromInt(5)
		return []domain.Sale{s}, nil
	}

	createCalled := false
	f.paymentRepo.CreateConsolidatedFunc = func(ctx context.Context, payment *domain.ConsolidatedPayment) error {
		createCalled = true
		return nil
	}

	_, err := f.uc.ProcessGroup(context.Background(), "2026-03-05__card__Amazon")
	if !errors.Is(err, domain.ErrGroupNotProcessable) {
		t.Fatalf("expected ErrGroupNotProcessable, got %v", err)
	}
	if createCalled {
		t.Error("no payment may be created for a refused group")
	}
}

func TestAutoReconUseCase_ProcessGroup_CompensatesFailedSaleUpdate(t *testing.T) {
	f := newAutoReconFixture()
	f.saleRepo.ListUnreconciledFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{testSale("s1", 5, 100)}, nil
	}

	f.saleRepo.BulkAssignReconciliationFunc = func(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error {
		return errors.New("lock timeout")
	}
	var deleted string
	f.paymentRepo.DeleteConsolidatedFunc = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}

	_, err := f.uc.ProcessGroup(context.Background(), "2026-03-05__card__Amazon")
	if err == nil {
		t.Fatal("expected failure to surface")
	}

	if deleted == "" {
		t.Fatal("expected the consolidated payment to be deleted again")
	}

	// The compensation is audited as a rollback.
	found := false
	for _, e := range f.auditRepo.Entries {
		if e.Action == domain.AuditActionAutoReconRollback {
			found = true
			if e.Status != domain.AuditStatusFailure {
				t.Error("rollback audit must carry failure status")
			}
		}
	}
	if !found {
		t.Error("expected an autorecon.rollback audit entry")
	}
}

func TestAutoReconUseCase_ProcessGroup_OrphanOnFailedRollback(t *testing.T) {
	f := newAutoReconFixture()
	f.saleRepo.ListUnreconciledFunc = func(ctx context.Context) ([]domain.Sale, error) {
		return []domain.Sale{testSale("s1", 5, 100)}, nil
	}
	f.saleRepo.BulkAssignReconciliationFunc = func(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error {
		return errors.New("lock timeout")
	}
	f.paymentRepo.DeleteConsolidatedFunc = func(ctx context.Context, id string) error {
		return errors.New("connection lost")
	}

	_, err := f.uc.ProcessGroup(context.Background(), "2026-03-05__card__Amazon")
	if err == nil {
		t.Fatal("expected failure to surface")
	}

	// A failed rollback writes no rollback audit entry; the orphan is
	// only logged.
	for _, e := range f.auditRepo.Entries {
		if e.Action == domain.AuditActionAutoReconRollback {
			t.Error("no rollback audit entry expected when the delete failed")
		}
	}
}
