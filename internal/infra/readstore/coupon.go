package readstore

import (
	"context"
	"fmt"
	"strings"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (r *CouponReadStore) FindBatchPage(ctx context.Context, limit, offset int32) ([]*queries.BatchListItem, error) {
	const q = `
		SELECT b.id, b.batch_number, b.points_per_coupon, b.total_coupons,
		       count(c.id) FILTER (WHERE c.is_scanned),
		       b.valid_from, b.valid_to, b.status, b.created_at
		FROM coupon_batches b
		LEFT JOIN coupon_codes c ON c.batch_id = b.id
		GROUP BY b.id
		ORDER BY b.created_at DESC, b.id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon batches", err)
	}
	defer rows.Close()

	var items []*queries.BatchListItem
	for rows.Next() {
		var v queries.BatchListItem
		if err := rows.Scan(
			&v.ID, &v.BatchNumber, &v.PointsPerCoupon, &v.TotalCoupons,
			&v.ScannedCount, &v.ValidFrom, &v.ValidTo, &v.Status, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon batch row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon batches", err)
	}
	return items, nil
}

func (r *CouponReadStore) CountBatches(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM coupon_batches`).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon batches", err)
	}
	return total, nil
}

func couponFilterClause(filter queries.CouponFilter) (string, []any) {
	conds := []string{"1=1"}
	var args []any

	if filter.BatchID != nil {
		args = append(args, *filter.BatchID)
		conds = append(conds, fmt.Sprintf("c.batch_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("c.status = $%d::coupon_status", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (r *CouponReadStore) FindCodePage(ctx context.Context, filter queries.CouponFilter, limit, offset int32) ([]*queries.CouponListItem, error) {
	where, args := couponFilterClause(filter)
	q := fmt.Sprintf(`
		SELECT c.id, c.code, b.batch_number, c.points_value, c.status,
		       c.is_scanned, c.scanned_by, c.scanned_at, c.valid_from, c.valid_to
		FROM coupon_codes c
		JOIN coupon_batches b ON b.id = c.batch_id
		WHERE %s
		ORDER BY c.created_at DESC, c.id
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon codes", err)
	}
	defer rows.Close()

	var items []*queries.CouponListItem
	for rows.Next() {
		var v queries.CouponListItem
		if err := rows.Scan(
			&v.ID, &v.Code, &v.BatchNumber, &v.PointsValue, &v.Status,
			&v.IsScanned, &v.ScannedBy, &v.ScannedAt, &v.ValidFrom, &v.ValidTo,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon code row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon codes", err)
	}
	return items, nil
}

func (r *CouponReadStore) CountCodes(ctx context.Context, filter queries.CouponFilter) (int64, error) {
	where, args := couponFilterClause(filter)
	q := fmt.Sprintf(`SELECT count(*) FROM coupon_codes c WHERE %s`, where)

	var total int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupon codes", err)
	}
	return total, nil
}

func (r *CouponReadStore) FindScanHistoryPage(ctx context.Context, workerID uuid.UUID, limit, offset int32) ([]*queries.ScanHistoryItem, error) {
	const q = `
		SELECT code, batch_number, points_earned, scanned_at
		FROM coupon_scan_history
		WHERE worker_id = $1
		ORDER BY scanned_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, q, workerID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scan history", err)
	}
	defer rows.Close()

	var items []*queries.ScanHistoryItem
	for rows.Next() {
		var v queries.ScanHistoryItem
		if err := rows.Scan(&v.Code, &v.BatchNumber, &v.PointsEarned, &v.ScannedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate scan history", err)
	}
	return items, nil
}

func (r *CouponReadStore) CountScanHistory(ctx context.Context, workerID uuid.UUID) (int64, error) {
	const q = `SELECT count(*) FROM coupon_scan_history WHERE worker_id = $1`

	var total int64
	if err := r.db.QueryRow(ctx, q, workerID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count scan history", err)
	}
	return total, nil
}
