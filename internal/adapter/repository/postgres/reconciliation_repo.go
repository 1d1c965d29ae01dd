package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// ReconciliationRepository implements usecase.ReconciliationRepository:
// the write side of closing an expense/invoice reconciliation. Both
// inserts run inside the caller's transaction so a failed close leaves
// nothing behind.
type ReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepository creates a new ReconciliationRepository.
func NewReconciliationRepository(pool *pgxpool.Pool) *ReconciliationRepository {
	return &ReconciliationRepository{pool: pool}
}

// CreateRelation links an expense to an applied invoice.
func (r *ReconciliationRepository) CreateRelation(ctx context.Context, tx usecase.Transaction, rel *domain.ExpenseInvoiceRelation) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO expense_invoice_relations (id, expense_id, invoice_id, applied_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		rel.ID,
		rel.ExpenseID,
		rel.InvoiceID,
		decimalToNumeric(rel.AppliedAmount),
		timeToPgTimestamptz(rel.CreatedAt),
	)

	return err
}

// CreateAdjustment records the residual of an imperfect match.
func (r *ReconciliationRepository) CreateAdjustment(ctx context.Context, tx usecase.Transaction, adj *domain.AccountingAdjustment) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO accounting_adjustments (id, expense_id, amount, adjustment_type, chart_account_id, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		adj.ID,
		adj.ExpenseID,
		decimalToNumeric(adj.Amount),
		string(adj.Type),
		adj.ChartAccountID,
		adj.Notes,
		timeToPgTimestamptz(adj.CreatedAt),
	)

	return err
}
