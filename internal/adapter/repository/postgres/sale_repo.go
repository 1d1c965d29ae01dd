package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// SaleRepository implements usecase.SaleRepository.
type SaleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository creates a new SaleRepository.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// ListUnreconciled lists sales without a reconciliation id.
func (r *SaleRepository) ListUnreconciled(ctx context.Context) ([]domain.Sale, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, date, date_paid, price, payment_method, channel,
		        reconciliation_id, commission, retention, shipping, status_paid
		 FROM sales
		 WHERE reconciliation_id IS NULL
		 ORDER BY date DESC NULLS LAST, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var (
			sale             domain.Sale
			date             pgtype.Timestamptz
			datePaid         pgtype.Timestamptz
			price            pgtype.Numeric
			reconciliationID pgtype.Text
			commission       pgtype.Numeric
			retention        pgtype.Numeric
			shipping         pgtype.Numeric
		)

		err := rows.Scan(
			&sale.ID,
			&date,
			&datePaid,
			&price,
			&sale.PaymentMethod,
			&sale.Channel,
			&reconciliationID,
			&commission,
			&retention,
			&shipping,
			&sale.StatusPaid,
		)
		if err != nil {
			return nil, err
		}

		sale.Date = timestamptzToTimePtr(date)
		sale.DatePaid = timestamptzToTimePtr(datePaid)
		sale.Price = numericToDecimalPtr(price)
		sale.ReconciliationID = textToStringPtr(reconciliationID)
		sale.Commission = numericToDecimal(commission)
		sale.Retention = numericToDecimal(retention)
		sale.Shipping = numericToDecimal(shipping)

		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

// BulkAssignReconciliation stamps every grouped sale with the
// consolidated payment id in one statement.
func (r *SaleRepository) BulkAssignReconciliation(ctx context.Context, saleIDs []string, reconciliationID string, datePaid time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sales
		 SET reconciliation_id = $1,
		     status_paid = $2,
		     date_paid = $3
		 WHERE id = ANY($4)`,
		reconciliationID, domain.StatusPaidSettled, timeToPgTimestamptz(datePaid), saleIDs)

	return err
}
