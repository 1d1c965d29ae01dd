package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// TransferRepository implements usecase.TransferRepository. Rows are
// joined against both accounts so the normalizer sees the currency of
// each leg.
type TransferRepository struct {
	pool *pgxpool.Pool
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{pool: pool}
}

// ListOutgoing lists transfers leaving the account.
func (r *TransferRepository) ListOutgoing(ctx context.Context, accountID string) ([]domain.TransferRecord, error) {
	return r.list(ctx, "t.from_account_id", accountID)
}

// ListIncoming lists transfers arriving at the account.
func (r *TransferRepository) ListIncoming(ctx context.Context, accountID string) ([]domain.TransferRecord, error) {
	return r.list(ctx, "t.to_account_id", accountID)
}

func (r *TransferRepository) list(ctx context.Context, column, accountID string) ([]domain.TransferRecord, error) {
	query := `
	SELECT t.id, t.date, t.reference_number,
	       t.from_account_id, t.to_account_id,
	       t.amount_from, t.amount_to,
	       fa.currency, ta.currency, t.exchange_rate
	FROM account_transfers t
	JOIN bank_accounts fa ON fa.id = t.from_account_id
	JOIN bank_accounts ta ON ta.id = t.to_account_id
	WHERE ` + column + ` = $1
	ORDER BY t.date DESC`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.TransferRecord
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}

		transfers = append(transfers, *transfer)
	}

	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row) (*domain.TransferRecord, error) {
	var (
		transfer     domain.TransferRecord
		date         pgtype.Timestamptz
		amountFrom   pgtype.Numeric
		amountTo     pgtype.Numeric
		exchangeRate pgtype.Numeric
	)

	err := row.Scan(
		&transfer.ID,
		&date,
		&transfer.Reference,
		&transfer.FromAccountID,
		&transfer.ToAccountID,
		&amountFrom,
		&amountTo,
		&transfer.FromCurrency,
		&transfer.ToCurrency,
		&exchangeRate,
	)
	if err != nil {
		return nil, err
	}

	transfer.Date = date.Time
	transfer.AmountFrom = numericToDecimal(amountFrom)
	transfer.AmountTo = numericToDecimal(amountTo)
	transfer.ExchangeRate = numericToDecimalPtr(exchangeRate)

	return &transfer, nil
}
