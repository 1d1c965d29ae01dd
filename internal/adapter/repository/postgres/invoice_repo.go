package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/juliosil99/demayoreoerp/internal/domain"
	"github.com/juliosil99/demayoreoerp/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, total_amount, invoice_type, currency, exchange_rate, paid_amount`

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.InvoiceCandidate, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return invoice, nil
}

// ListCandidates lists unprocessed invoices in a currency that still
// have amount left to apply.
func (r *InvoiceRepository) ListCandidates(ctx context.Context, currency domain.Currency, limit, offset int) ([]domain.InvoiceCandidate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceColumns+`
		 FROM invoices
		 WHERE processed = false
		   AND currency = $1
		   AND abs(paid_amount) < abs(total_amount)
		 ORDER BY id
		 LIMIT $2 OFFSET $3`,
		string(currency), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.InvoiceCandidate
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}

		invoices = append(invoices, *invoice)
	}

	return invoices, rows.Err()
}

// ApplyPayment records the applied amount on an invoice within a
// transaction.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, processed bool, at time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE invoices SET paid_amount = $2, processed = $3, updated_at = $4 WHERE id = $1`,
		id, decimalToNumeric(paidAmount), processed, timeToPgTimestamptz(at))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

func scanInvoice(row pgx.Row) (*domain.InvoiceCandidate, error) {
	var (
		invoice      domain.InvoiceCandidate
		totalAmount  pgtype.Numeric
		exchangeRate pgtype.Numeric
		paidAmount   pgtype.Numeric
	)

	err := row.Scan(
		&invoice.ID,
		&totalAmount,
		&invoice.InvoiceType,
		&invoice.Currency,
		&exchangeRate,
		&paidAmount,
	)
	if err != nil {
		return nil, err
	}

	invoice.TotalAmount = numericToDecimal(totalAmount)
	invoice.ExchangeRate = numericToDecimalPtr(exchangeRate)
	invoice.PaidAmount = numericToDecimal(paidAmount)

	return &invoice, nil
}
