package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juliosil99/demayoreoerp/internal/domain"
)

// ChannelRepository implements usecase.ChannelRepository.
type ChannelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository creates a new ChannelRepository.
func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

// List lists all sales channels.
func (r *ChannelRepository) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, code, auto_reconcilable FROM channels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		var channel domain.Channel

		err := rows.Scan(&channel.ID, &channel.Name, &channel.Code, &channel.AutoReconcilable)
		if err != nil {
			return nil, err
		}

		channels = append(channels, channel)
	}

	return channels, rows.Err()
}
