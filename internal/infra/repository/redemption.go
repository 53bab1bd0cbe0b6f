package repository

import (
	"context"
	"errors"
	"time"

	"trust-rewards/internal/domain/redemption"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RedemptionRepository struct{}

func NewRedemptionRepository() shared.RedemptionRepository {
	return &RedemptionRepository{}
}

func (r *RedemptionRepository) Create(ctx context.Context, dbtx db.DBTX, req *redemption.Request) error {
	const q = `
		INSERT INTO redemption_requests (id, code, worker_id, gift_id, points_used, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := dbtx.Exec(ctx, q,
		req.ID(), req.Code(), req.WorkerID(), req.GiftID(),
		req.PointsUsed(), req.Status().String(), req.RequestedAt(),
	); err != nil {
		return infra.WrapRepoErr("failed to create redemption request", err)
	}
	return nil
}

func (r *RedemptionRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.RedemptionSnapshot, error) {
	const q = `
		SELECT r.id, r.code, r.worker_id, r.gift_id, g.name, w.name,
		       r.points_used, r.status, r.requested_at
		FROM redemption_requests r
		JOIN gift_catalog g ON g.id = r.gift_id
		JOIN workers w ON w.id = r.worker_id
		WHERE r.id = $1`

	var s shared.RedemptionSnapshot
	err := dbtx.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Code, &s.WorkerID, &s.GiftID, &s.GiftName, &s.WorkerName,
		&s.PointsUsed, &s.Status, &s.RequestedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("redemption request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption request", err)
	}
	return &s, nil
}

// TransitionStatus advances the state machine guarded on the current value.
// A false return means the row moved under us; the caller re-reads and
// re-validates rather than applying the side effects twice.
func (r *RedemptionRepository) TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to redemption.Status, at time.Time) (bool, error) {
	var stampColumn string
	switch to {
	case redemption.StatusApproved:
		stampColumn = "approved_at"
	case redemption.StatusRedeemed:
		stampColumn = "redeemed_at"
	case redemption.StatusCancelled:
		stampColumn = "cancelled_at"
	default:
		return false, infra.WrapRepoErr("unsupported transition target", nil, infra.KindConflict)
	}

	q := `
		UPDATE redemption_requests
		SET status = $3, ` + stampColumn + ` = $4, updated_at = $4
		WHERE id = $1 AND status = $2`

	tag, err := dbtx.Exec(ctx, q, id, from.String(), to.String(), at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition redemption status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RedemptionRepository) AppendHistory(ctx context.Context, dbtx db.DBTX, redemptionID uuid.UUID, entry redemption.HistoryEntry) error {
	const q = `
		INSERT INTO redemption_status_history (redemption_id, status, actor_id, actor_name, comment, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := dbtx.Exec(ctx, q,
		redemptionID, entry.Status.String(), entry.ActorID, entry.ActorName, entry.Comment, entry.ChangedAt,
	); err != nil {
		return infra.WrapRepoErr("failed to append redemption history", err)
	}
	return nil
}
