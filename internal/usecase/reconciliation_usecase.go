package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/infrastructure/metrics"
)

// ReconciliationUseCase drives the invoice-matching flow: an operator
// opens a session for one expense, builds a basket of invoices and
// credit notes, and closes it. The basket lives in the cache between
// steps; closing writes relations, invoice updates, the optional
// adjustment and the expense flag in one database transaction.
type ReconciliationUseCase struct {
	txManager   TransactionManager
	expenseRepo ExpenseRepository
	invoiceRepo InvoiceRepository
	reconRepo   ReconciliationRepository
	auditRepo   AuditRepository
	cache       Cache
	idGen       IDGenerator
	clock       Clock
	logger      zerolog.Logger
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	txManager TransactionManager,
	expenseRepo ExpenseRepository,
	invoiceRepo InvoiceRepository,
	reconRepo ReconciliationRepository,
	auditRepo AuditRepository,
	cache Cache,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:   txManager,
		expenseRepo: expenseRepo,
		invoiceRepo: invoiceRepo,
		reconRepo:   reconRepo,
		auditRepo:   auditRepo,
		cache:       cache,
		idGen:       idGen,
		clock:       clock,
		logger:      logger,
	}
}

// StartSession opens a matching session for an unreconciled expense.
func (uc *ReconciliationUseCase) StartSession(ctx context.Context, expenseID string) (*domain.ReconciliationSession, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if expense.Reconciled {
		return nil, domain.ErrExpenseReconciled
	}

	if err := domain.ValidateAmount(expense.Amount); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	session := &domain.ReconciliationSession{
		ID:        uc.idGen.Generate(),
		Expense:   *expense,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSession loads a session from the cache.
func (uc *ReconciliationUseCase) GetSession(ctx context.Context, sessionID string) (*domain.ReconciliationSession, error) {
	data, err := uc.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	var session domain.ReconciliationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}

	return &session, nil
}

// AddInvoice puts an invoice into the session basket. A rejected add
// (currency mismatch, fully applied invoice) leaves the basket unchanged.
func (uc *ReconciliationUseCase) AddInvoice(ctx context.Context, sessionID, invoiceID string) (*domain.ReconciliationSession, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := session.Add(*invoice, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// RemoveInvoice takes an invoice out of the session basket.
func (uc *ReconciliationUseCase) RemoveInvoice(ctx context.Context, sessionID, invoiceID string) (*domain.ReconciliationSession, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.Remove(invoiceID, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSummary accumulates the current selection against the expense.
func (uc *ReconciliationUseCase) GetSummary(ctx context.Context, sessionID string) (domain.Selection, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return domain.Selection{}, err
	}

	return session.Summary()
}

// ListCandidates lists open invoices in a currency for basket building.
func (uc *ReconciliationUseCase) ListCandidates(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error) {
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.invoiceRepo.ListCandidates(ctx, currency, limit, offset)
}

// CloseSessionInput carries the close parameters. ChartAccountID and
// Notes are required only when the selection leaves a residual.
type CloseSessionInput struct {
	SessionID      string
	ChartAccountID string
	Notes          string
}

// ClosedReconciliation is the outcome of a successful close.
type ClosedReconciliation struct {
	ExpenseID  string
	Selection  domain.Selection
	Adjustment *domain.AccountingAdjustment
}

// CloseSession finalizes the reconciliation: relations and invoice
// updates for every selected invoice, an accounting adjustment when the
// remainder exceeds tolerance, and the reconciled flag on the expense.
// All writes happen inside one transaction so a failed write rolls
// everything back.
func (uc *ReconciliationUseCase) CloseSession(ctx context.Context, input CloseSessionInput) (*ClosedReconciliation, error) {
	session, err := uc.GetSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	selection, err := session.Summary()
	if err != nil {
		return nil, err
	}

	adjustmentType, needsAdjustment := selection.RequiredAdjustment()
	if needsAdjustment && input.ChartAccountID == "" {
		return nil, domain.ErrMissingChartAccount
	}

	now := uc.clock.Now()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	for _, invoice := range session.Selected {
		relation := &domain.ExpenseInvoiceRelation{
			ID:            uc.idGen.Generate(),
			ExpenseID:     session.Expense.ID,
			InvoiceID:     invoice.ID,
			AppliedAmount: invoice.TotalAmount,
			CreatedAt:     now,
		}

		if err := uc.reconRepo.CreateRelation(ctx, tx, relation); err != nil {
			return nil, err
		}

		if err := uc.invoiceRepo.ApplyPayment(ctx, tx, invoice.ID, invoice.TotalAmount, true, now); err != nil {
			return nil, err
		}
	}

	var adjustment *domain.AccountingAdjustment
	if needsAdjustment {
		if err := domain.ValidateAmount(selection.RemainingAmount.Abs()); err != nil {
			return nil, err
		}

		adjustment = &domain.AccountingAdjustment{
			ID:             uc.idGen.Generate(),
			ExpenseID:      session.Expense.ID,
			Amount:         selection.RemainingAmount.Abs(),
			Type:           adjustmentType,
			ChartAccountID: input.ChartAccountID,
			Notes:          input.Notes,
			CreatedAt:      now,
		}

		if err := uc.reconRepo.CreateAdjustment(ctx, tx, adjustment); err != nil {
			return nil, err
		}
	}

	if err := uc.expenseRepo.MarkReconciled(ctx, tx, session.Expense.ID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.deleteSession(ctx, session.ID)
	metrics.ReconciliationsClosed.Inc()

	uc.auditClose(ctx, session, selection, now)

	return &ClosedReconciliation{
		ExpenseID:  session.Expense.ID,
		Selection:  selection,
		Adjustment: adjustment,
	}, nil
}

func (uc *ReconciliationUseCase) saveSession(ctx context.Context, session *domain.ReconciliationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return uc.cache.Set(ctx, sessionKeyPrefix+session.ID, data, DefaultSessionTTL)
}

func (uc *ReconciliationUseCase) deleteSession(ctx context.Context, sessionID string) {
	if err := uc.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil && !errors.Is(err, context.Canceled) {
		uc.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to delete closed session")
	}
}

func (uc *ReconciliationUseCase) auditClose(ctx context.Context, session *domain.ReconciliationSession, selection domain.Selection, now time.Time) {
	entry := &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		Action:       domain.AuditActionExpenseReconcile,
		ResourceType: "expense",
		ResourceID:   session.Expense.ID,
		BeforeState:  domain.MarshalState(&session.Expense),
		AfterState:   domain.MarshalState(selection),
		Status:       domain.AuditStatusSuccess,
		CreatedAt:    now,
	}

	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Warn().Err(err).Str("expense_id", session.Expense.ID).Msg("failed to audit reconciliation")
	}
}
