package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/metrics"
)

// AutoReconUseCase detects clusters of unreconciled sales and converts
// an approved cluster into one consolidated payment plus a bulk sale
// update.
type AutoReconUseCase struct {
	channelRepo ChannelRepository
	saleRepo    SaleRepository
	paymentRepo PaymentRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
	clock       Clock
	logger      zerolog.Logger
}

// NewAutoReconUseCase creates a new AutoReconUseCase.
func NewAutoReconUseCase(
	channelRepo ChannelRepository,
	saleRepo SaleRepository,
	paymentRepo PaymentRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *AutoReconUseCase {
	return &AutoReconUseCase{
		channelRepo: channelRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		clock:       clock,
		logger:      logger,
	}
}

// DetectGroups loads channels and unreconciled sales and runs group
// detection. Groups are transient: nothing is written here.
func (uc *AutoReconUseCase) DetectGroups(ctx context.Context) ([]domain.AutoReconciliationGroup, error) {
	channels, err := uc.channelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListUnreconciled(ctx)
	if err != nil {
		return nil, err
	}

	groups := domain.DetectGroups(channels, sales)

	for _, g := range groups {
		metrics.AutoReconGroupsDetected.WithLabelValues(string(g.Status)).Inc()
	}

	return groups, nil
}

// ProcessGroup turns one detected group into a consolidated payment and
// stamps its sales with the reconciliation id. Major-discrepancy groups
// are refused. When the bulk sale update fails after the payment was
// created, the payment is deleted again so no orphaned payment remains.
func (uc *AutoReconUseCase) ProcessGroup(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error) {
	groups, err := uc.DetectGroups(ctx)
	if err != nil {
		return nil, err
	}

	var group *domain.AutoReconciliationGroup
	for i := range groups {
		if groups[i].ID == groupID {
			group = &groups[i]
			break
		}
	}

	if group == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, groupID)
	}

	if !group.Processable() {
		return nil, domain.ErrGroupNotProcessable
	}

	now := uc.clock.Now()
	payment := &domain.ConsolidatedPayment{
		ID:            uc.idGen.Generate(),
		Date:          group.Date,
		Amount:        group.TotalAmount,
		PaymentMethod: group.PaymentMethod,
		Channel:       group.Channel,
		Notes:         fmt.Sprintf("Conciliación automática de %d ventas", len(group.Sales)),
		CreatedAt:     now,
	}

	if err := uc.paymentRepo.CreateConsolidated(ctx, payment); err != nil {
		return nil, err
	}

	saleIDs := make([]string, 0, len(group.Sales))
	for _, sale := range group.Sales {
		saleIDs = append(saleIDs, sale.ID)
	}

	if err := uc.saleRepo.BulkAssignReconciliation(ctx, saleIDs, payment.ID, now); err != nil {
		uc.rollbackPayment(ctx, payment, err)
		return nil, fmt.Errorf("bulk sale update failed: %w", err)
	}

	metrics.AutoReconGroupsProcessed.Inc()
	uc.auditProcess(ctx, group, payment, now)

	return payment, nil
}

// rollbackPayment compensates a half-applied process: the consolidated
// payment exists but the sales were never stamped, so it is removed
// again. A failed rollback is only logged; the orphan then needs manual
// cleanup.
func (uc *AutoReconUseCase) rollbackPayment(ctx context.Context, payment *domain.ConsolidatedPayment, cause error) {
	if err := uc.paymentRepo.DeleteConsolidated(ctx, payment.ID); err != nil {
		uc.logger.Error().
			Err(err).
			AnErr("cause", cause).
			Str("payment_id", payment.ID).
			Msg("failed to roll back consolidated payment")
		return
	}

	uc.logger.Warn().
		Err(cause).
		Str("payment_id", payment.ID).
		Msg("rolled back consolidated payment after failed sale update")

	entry := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       domain.AuditActionAutoReconRollback,
		ResourceType: "autorecon_group",
		ResourceID:   payment.ID,
		Status:       domain.AuditStatusFailure,
		ErrorMessage: cause.Error(),
		CreatedAt:    uc.clock.Now(),
	}
	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to audit autorecon rollback")
	}
}

func (uc *AutoReconUseCase) auditProcess(ctx context.Context, group *domain.AutoReconciliationGroup, payment *domain.ConsolidatedPayment, now time.Time) {
	entry := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       domain.AuditActionAutoReconProcess,
		ResourceType: "autorecon_group",
		ResourceID:   group.ID,
		AfterState:   domain.MarshalState(payment),
		Status:       domain.AuditStatusSuccess,
		CreatedAt:    now,
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn().Err(err).Str("group_id", group.ID).Msg("failed to audit autorecon process")
	}
}
