package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/dto"
	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// AuditService defines the behavior needed by AuditHandler.
type AuditService interface {
	ListEntries(ctx context.Context, input usecase.ListAuditEntriesInput) ([]*domain.AuditLog, error)
}

// AuditHandler serves the audit trail.
type AuditHandler struct {
	auditUC AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditUC AuditService) *AuditHandler {
	return &AuditHandler{auditUC: auditUC}
}

// List lists audit entries, filterable by action, resource and an
// RFC 3339 date range.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListAuditEntriesInput{
		Action:       r.URL.Query().Get("action"),
		ResourceType: r.URL.Query().Get("resource_type"),
		ResourceID:   r.URL.Query().Get("resource_id"),
		Limit:        parseIntQuery(r, "limit", domain.DefaultPageSize),
		Offset:       parseIntQuery(r, "offset", 0),
	}

	startDate, err := parseTimeQuery(r, "start_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date", err.Error())
		return
	}
	input.StartDate = startDate

	endDate, err := parseTimeQuery(r, "end_date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date", err.Error())
		return
	}
	input.EndDate = endDate

	entries, err := h.auditUC.ListEntries(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list audit entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAuditLogsResponse{
		Entries: dto.AuditLogsFromDomain(entries),
		Total:   len(entries),
	})
}

// parseTimeQuery parses an optional RFC 3339 query parameter.
func parseTimeQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
