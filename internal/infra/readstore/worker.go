package readstore

import (
	"context"
	"errors"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WorkerReadStore struct {
	db db.DBTX
}

func NewWorkerReadStore(dbtx db.DBTX) *WorkerReadStore {
	return &WorkerReadStore{db: dbtx}
}

func (r *WorkerReadStore) FindOverview(ctx context.Context, id uuid.UUID) (*queries.WorkerOverviewRow, error) {
	const q = `
		SELECT id, name, wallet_balance, coupons_scanned
		FROM workers
		WHERE id = $1`

	var row queries.WorkerOverviewRow
	err := r.db.QueryRow(ctx, q, id).Scan(&row.ID, &row.Name, &row.WalletBalance, &row.CouponsScanned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("worker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find worker overview", err)
	}
	return &row, nil
}
