package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(dbtx db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: dbtx}
}

func redemptionFilterClause(filter queries.RedemptionFilter) (string, []any) {
	conds := []string{"1=1"}
	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("r.status = $%d::redemption_status", len(args)))
	}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		conds = append(conds, fmt.Sprintf("r.worker_id = $%d", len(args)))
	}
	if filter.GiftID != nil {
		args = append(args, *filter.GiftID)
		conds = append(conds, fmt.Sprintf("r.gift_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("r.requested_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("r.requested_at <= $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(r.code ILIKE $%d OR w.name ILIKE $%d OR g.name ILIKE $%d)", n, n, n))
	}

	return strings.Join(conds, " AND "), args
}

const redemptionJoins = `
	FROM redemption_requests r
	JOIN workers w ON w.id = r.worker_id
	JOIN gift_catalog g ON g.id = r.gift_id`

func (r *RedemptionReadStore) FindPage(ctx context.Context, filter queries.RedemptionFilter, limit, offset int32) ([]*queries.RedemptionListItem, error) {
	where, args := redemptionFilterClause(filter)
	q := fmt.Sprintf(`
		SELECT r.id, r.code, r.worker_id, w.name, r.gift_id, g.name,
		       r.points_used, r.status, r.requested_at
		%s
		WHERE %s
		ORDER BY r.requested_at DESC, r.id
		LIMIT $%d OFFSET $%d`, redemptionJoins, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}
	defer rows.Close()

	var items []*queries.RedemptionListItem
	for rows.Next() {
		var v queries.RedemptionListItem
		if err := rows.Scan(
			&v.ID, &v.Code, &v.WorkerID, &v.WorkerName, &v.GiftID, &v.GiftName,
			&v.PointsUsed, &v.Status, &v.RequestedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan redemption row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate redemptions", err)
	}
	return items, nil
}

func (r *RedemptionReadStore) Count(ctx context.Context, filter queries.RedemptionFilter) (int64, error) {
	where, args := redemptionFilterClause(filter)
	q := fmt.Sprintf(`SELECT count(*) %s WHERE %s`, redemptionJoins, where)

	var total int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count redemptions", err)
	}
	return total, nil
}

func (r *RedemptionReadStore) Stats(ctx context.Context, filter queries.RedemptionFilter) (*queries.RedemptionStats, error) {
	// Stats ignore status and pagination but keep the remaining filters, so
	// the header matches the list it sits above.
	filter.Status = nil
	where, args := redemptionFilterClause(filter)
	q := fmt.Sprintf(`
		SELECT count(*) FILTER (WHERE r.status = 'pending'),
		       count(*) FILTER (WHERE r.status = 'approved'),
		       count(*) FILTER (WHERE r.status = 'redeemed'),
		       count(*) FILTER (WHERE r.status = 'cancelled'),
		       coalesce(sum(r.points_used), 0),
		       coalesce(sum(r.points_used) FILTER (WHERE r.status = 'pending'), 0)
		%s
		WHERE %s`, redemptionJoins, where)

	var s queries.RedemptionStats
	if err := r.db.QueryRow(ctx, q, args...).Scan(
		&s.Pending, &s.Approved, &s.Redeemed, &s.Cancelled,
		&s.TotalPoints, &s.PendingPoints,
	); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate redemption stats", err)
	}
	return &s, nil
}

func (r *RedemptionReadStore) FindDetail(ctx context.Context, id uuid.UUID) (*queries.RedemptionDetail, error) {
	const q = `
		SELECT r.id, r.code, r.worker_id, w.name, w.mobile,
		       r.gift_id, g.name, g.category, r.points_used, r.status,
		       r.requested_at, r.approved_at, r.redeemed_at, r.cancelled_at
		FROM redemption_requests r
		JOIN workers w ON w.id = r.worker_id
		JOIN gift_catalog g ON g.id = r.gift_id
		WHERE r.id = $1`

	var d queries.RedemptionDetail
	err := r.db.QueryRow(ctx, q, id).Scan(
		&d.ID, &d.Code, &d.WorkerID, &d.WorkerName, &d.WorkerMobile,
		&d.GiftID, &d.GiftName, &d.GiftCategory, &d.PointsUsed, &d.Status,
		&d.RequestedAt, &d.ApprovedAt, &d.RedeemedAt, &d.CancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption detail", err)
	}
	return &d, nil
}

func (r *RedemptionReadStore) FindTimeline(ctx context.Context, id uuid.UUID) ([]*queries.StatusChangeView, error) {
	const q = `
		SELECT status, actor_id, actor_name, comment, changed_at
		FROM redemption_status_history
		WHERE redemption_id = $1
		ORDER BY changed_at, id`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load redemption timeline", err)
	}
	defer rows.Close()

	var timeline []*queries.StatusChangeView
	for rows.Next() {
		var v queries.StatusChangeView
		if err := rows.Scan(&v.Status, &v.ActorID, &v.ActorName, &v.Comment, &v.ChangedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeline row", err)
		}
		timeline = append(timeline, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timeline", err)
	}
	return timeline, nil
}

func (r *RedemptionReadStore) CountByWorker(ctx context.Context, workerID uuid.UUID) (*queries.WorkerRedemptionCounts, error) {
	const q = `
		SELECT count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'redeemed')
		FROM redemption_requests
		WHERE worker_id = $1`

	var c queries.WorkerRedemptionCounts
	if err := r.db.QueryRow(ctx, q, workerID).Scan(&c.Pending, &c.Redeemed); err != nil {
		return nil, infra.WrapRepoErr("failed to count worker redemptions", err)
	}
	return &c, nil
}
