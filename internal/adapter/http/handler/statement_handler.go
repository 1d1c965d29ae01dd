package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/dto"
	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	GetStatement(ctx context.Context, accountID string) (*domain.Account, []domain.DisplayTransaction, error)
}

// BalanceService defines the behavior needed for on-demand balance sync.
type BalanceService interface {
	CheckAndReconcile(ctx context.Context, accountID string) (domain.SyncResult, error)
}

// StatementHandler serves account statements and balance verification.
type StatementHandler struct {
	statementUC StatementService
	balanceUC   BalanceService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService, balanceUC BalanceService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC, balanceUC: balanceUC}
}

// GetStatement returns the newest-first statement of an account with
// running balances attached.
func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, rows, err := h.statementUC.GetStatement(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(account, rows))
}

// SyncBalance verifies the stored balance against the transaction feed
// and corrects it when the drift exceeds tolerance.
func (h *StatementHandler) SyncBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.balanceUC.CheckAndReconcile(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sync balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SyncResultFromDomain(id, result))
}
