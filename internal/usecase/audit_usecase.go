package usecase

import (
	"context"
	"time"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// AuditUseCase serves the audit trail query surface. Entries are
// written by the balance and reconciliation flows; this only reads
// them.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListAuditEntriesInput represents input for listing audit entries.
// Empty filter fields match everything.
type ListAuditEntriesInput struct {
	Action       string
	ResourceType string
	ResourceID   string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
	Offset       int
}

// ListEntries lists audit entries matching the filter, newest first.
func (uc *AuditUseCase) ListEntries(ctx context.Context, input ListAuditEntriesInput) ([]*domain.AuditLog, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.auditRepo.List(ctx, domain.AuditFilter{
		Action:       input.Action,
		ResourceType: input.ResourceType,
		ResourceID:   input.ResourceID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Limit:        limit,
		Offset:       offset,
	})
}
