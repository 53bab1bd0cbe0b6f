package repository

import (
	"context"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"
)

type SequenceRepository struct{}

func NewSequenceRepository() shared.SequenceRepository {
	return &SequenceRepository{}
}

// Next is the whole generator: one upsert that either creates the counter at 1
// or increments it, returning the value this caller owns. Postgres serializes
// the row update, so concurrent callers always observe distinct values.
func (r *SequenceRepository) Next(ctx context.Context, dbtx db.DBTX, key string) (int64, error) {
	const q = `
		INSERT INTO sequence_counters (key, sequence)
		VALUES ($1, 1)
		ON CONFLICT (key)
		DO UPDATE SET sequence = sequence_counters.sequence + 1
		RETURNING sequence`

	var seq int64
	if err := dbtx.QueryRow(ctx, q, key).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr("failed to advance sequence counter", err)
	}
	return seq, nil
}
