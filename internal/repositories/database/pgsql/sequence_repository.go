package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for named sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextValue atomically increments and returns the sequence value for a
// scope, creating the row on first use. The upsert is a single statement so
// concurrent callers never observe the same value.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, scope string) (int64, error) {
	query := `
		INSERT INTO sequences (scope, next_value)
		VALUES ($1, 1)
		ON CONFLICT (scope)
		DO UPDATE SET next_value = sequences.next_value + 1
		RETURNING next_value;
	`
	var next int64
	if err := r.Pool.QueryRow(ctx, query, scope).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", scope, err)
	}
	return next, nil
}
