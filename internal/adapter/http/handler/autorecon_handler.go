package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/dto"
	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// AutoReconService defines the behavior needed by AutoReconHandler.
type AutoReconService interface {
	DetectGroups(ctx context.Context) ([]domain.AutoReconciliationGroup, error)
	ProcessGroup(ctx context.Context, groupID string) (*domain.ConsolidatedPayment, error)
}

// AutoReconHandler handles sale-group detection and consolidation.
type AutoReconHandler struct {
	autoReconUC AutoReconService
}

// NewAutoReconHandler creates a new AutoReconHandler.
func NewAutoReconHandler(autoReconUC AutoReconService) *AutoReconHandler {
	return &AutoReconHandler{autoReconUC: autoReconUC}
}

// ListGroups detects and returns the current sale groups.
func (h *AutoReconHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.autoReconUC.DetectGroups(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to detect groups", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListGroupsResponse{
		Groups: dto.GroupsFromDomain(groups),
		Total:  len(groups),
	})
}

// ProcessGroup consolidates a processable group into one payment and
// marks its sales reconciled.
func (h *AutoReconHandler) ProcessGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.GroupID == "" {
		writeError(w, http.StatusBadRequest, "missing group ID", "")
		return
	}

	payment, err := h.autoReconUC.ProcessGroup(r.Context(), req.GroupID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to process group", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProcessedGroupResponse{
		GroupID:   req.GroupID,
		PaymentID: payment.ID,
		Amount:    payment.Amount,
	})
}
