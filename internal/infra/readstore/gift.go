package readstore

import (
	"context"
	"errors"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GiftReadStore struct{}

func NewGiftReadStore() shared.GiftReadStore {
	return &GiftReadStore{}
}

func (r *GiftReadStore) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.GiftSnapshot, error) {
	const q = `
		SELECT id, name, description, category, points_required, status
		FROM gift_catalog
		WHERE id = $1`

	var s shared.GiftSnapshot
	err := dbtx.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.PointsRequired, &s.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("gift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gift", err)
	}
	return &s, nil
}
