package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// PaymentRepository implements usecase.PaymentRepository. The payments
// table holds both client payments feeding account statements and the
// consolidated payments written by auto-reconciliation.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// ListByAccount lists client payments of an account, newest first.
func (r *PaymentRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.PaymentRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, amount, notes, client_name, reference_number
		 FROM payments
		 WHERE account_id = $1
		 ORDER BY date DESC`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PaymentRecord
	for rows.Next() {
		var (
			payment domain.PaymentRecord
			date    pgtype.Timestamptz
			amount  pgtype.Numeric
		)

		err := rows.Scan(&payment.ID, &date, &amount, &payment.Notes, &payment.ClientName, &payment.Reference)
		if err != nil {
			return nil, err
		}

		payment.Date = date.Time
		payment.Amount = numericToDecimal(amount)
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// CreateConsolidated inserts the payment row a processed
// auto-reconciliation group becomes.
func (r *PaymentRepository) CreateConsolidated(ctx context.Context, payment *domain.ConsolidatedPayment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, date, amount, notes, payment_method, channel, is_consolidated, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, true, $7)`,
		payment.ID,
		timeToPgTimestamptz(payment.Date),
		decimalToNumeric(payment.Amount),
		payment.Notes,
		payment.PaymentMethod,
		payment.Channel,
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// DeleteConsolidated removes a consolidated payment again; the
// compensating action when the sale bulk-update after it failed.
func (r *PaymentRepository) DeleteConsolidated(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM payments WHERE id = $1 AND is_consolidated = true`, id)

	return err
}
