package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, date, description, reference_number, amount, original_amount, currency, exchange_rate, reconciled`

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.ExpenseRecord, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}

		return nil, err
	}

	return expense, nil
}

// ListByAccount lists all expenses of an account, newest first.
func (r *ExpenseRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.ExpenseRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE account_id = $1 ORDER BY date DESC`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.ExpenseRecord
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, *expense)
	}

	return expenses, rows.Err()
}

// MarkReconciled flags an expense as reconciled within a transaction.
func (r *ExpenseRepository) MarkReconciled(ctx context.Context, tx usecase.Transaction, id string, at time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE expenses SET reconciled = true, reconciled_at = $2 WHERE id = $1`,
		id, timeToPgTimestamptz(at))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

func scanExpense(row pgx.Row) (*domain.ExpenseRecord, error) {
	var (
		expense        domain.ExpenseRecord
		date           pgtype.Timestamptz
		amount         pgtype.Numeric
		originalAmount pgtype.Numeric
		exchangeRate   pgtype.Numeric
	)

	err := row.Scan(
		&expense.ID,
		&date,
		&expense.Description,
		&expense.Reference,
		&amount,
		&originalAmount,
		&expense.Currency,
		&exchangeRate,
		&expense.Reconciled,
	)
	if err != nil {
		return nil, err
	}

	expense.Date = date.Time
	expense.Amount = numericToDecimal(amount)
	expense.OriginalAmount = numericToDecimalPtr(originalAmount)
	expense.ExchangeRate = numericToDecimalPtr(exchangeRate)

	return &expense, nil
}
