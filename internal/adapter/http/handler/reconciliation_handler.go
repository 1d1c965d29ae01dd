package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juliosil99/demayoreoerp/internal/adapter/http/dto"
	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	StartSession(ctx context.Context, expenseID string) (*domain.ReconciliationSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.ReconciliationSession, error)
	AddInvoice(ctx context.Context, sessionID, invoiceID string) (*domain.ReconciliationSession, error)
	RemoveInvoice(ctx context.Context, sessionID, invoiceID string) (*domain.ReconciliationSession, error)
	GetSummary(ctx context.Context, sessionID string) (domain.Selection, error)
	ListCandidates(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error)
	CloseSession(ctx context.Context, input usecase.CloseSessionInput) (*usecase.ClosedReconciliation, error)
}

// ReconciliationHandler handles expense-to-invoice matching sessions.
type ReconciliationHandler struct {
	reconUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconUC: reconUC}
}

// StartSession opens a matching session for an unreconciled expense.
func (h *ReconciliationHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req dto.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.ExpenseID == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	session, err := h.reconUC.StartSession(r.Context(), req.ExpenseID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to start session", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SessionFromDomain(session))
}

// GetSession returns the current state of a session.
func (h *ReconciliationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.reconUC.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromDomain(session))
}

// AddInvoice puts an invoice into the session basket.
func (h *ReconciliationHandler) AddInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.AddInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.InvoiceID == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	session, err := h.reconUC.AddInvoice(r.Context(), chi.URLParam(r, "id"), req.InvoiceID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromDomain(session))
}

// RemoveInvoice takes an invoice out of the session basket.
func (h *ReconciliationHandler) RemoveInvoice(w http.ResponseWriter, r *http.Request) {
	session, err := h.reconUC.RemoveInvoice(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "invoiceID"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to remove invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SessionFromDomain(session))
}

// GetSummary returns the running totals of the session basket.
func (h *ReconciliationHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reconUC.GetSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SelectionFromDomain(summary))
}

// ListCandidates lists open invoices in a currency.
func (h *ReconciliationHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	currency := domain.Currency(r.URL.Query().Get("currency"))
	limit := parseIntQuery(r, "limit", domain.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	invoices, err := h.reconUC.ListCandidates(r.Context(), currency, limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListInvoicesResponse{
		Invoices: dto.InvoicesFromDomain(invoices),
		Total:    len(invoices),
	})
}

// CloseSession finalizes the session, writing relations, invoice
// payments, the optional adjustment, and the reconciled flag.
func (h *ReconciliationHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CloseSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	closed, err := h.reconUC.CloseSession(r.Context(), usecase.CloseSessionInput{
		SessionID:      chi.URLParam(r, "id"),
		ChartAccountID: req.ChartAccountID,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to close session", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClosedFromDomain(closed))
}
