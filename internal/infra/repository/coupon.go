package repository

import (
	"context"
	"errors"
	"time"

	"trust-rewards/internal/domain/coupon"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct{}

func NewCouponRepository() shared.CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*shared.CouponSnapshot, error) {
	const q = `
		SELECT c.id, c.code, c.batch_id, b.batch_number, c.points_value,
		       c.status, c.is_scanned, c.valid_from, c.valid_to
		FROM coupon_codes c
		JOIN coupon_batches b ON b.id = c.batch_id
		WHERE c.code = $1`

	var (
		s      shared.CouponSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, q, code).Scan(
		&s.ID, &s.Code, &s.BatchID, &s.BatchNumber, &s.PointsValue,
		&status, &s.IsScanned, &s.ValidFrom, &s.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	s.Status = coupon.Status(status)
	return &s, nil
}

// Claim flips the single-use flag. The WHERE clause carries the whole race
// guard: of any number of concurrent scanners exactly one update matches.
func (r *CouponRepository) Claim(ctx context.Context, dbtx db.DBTX, code string, workerID uuid.UUID, at time.Time) (bool, error) {
	const q = `
		UPDATE coupon_codes
		SET is_scanned = true, status = 'scanned', scanned_by = $2, scanned_at = $3
		WHERE code = $1 AND is_scanned = false`

	tag, err := dbtx.Exec(ctx, q, code, workerID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim coupon", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CouponRepository) RecordScan(ctx context.Context, dbtx db.DBTX, rec shared.ScanRecord) error {
	const q = `
		INSERT INTO coupon_scan_history (coupon_id, code, batch_number, worker_id, points_earned, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := dbtx.Exec(ctx, q,
		rec.CouponID, rec.Code, rec.BatchNumber, rec.WorkerID, rec.Points, rec.ScannedAt,
	); err != nil {
		return infra.WrapRepoErr("failed to record coupon scan", err)
	}
	return nil
}

func (r *CouponRepository) CreateBatch(ctx context.Context, dbtx db.DBTX, b shared.BatchRecord) error {
	const q = `
		INSERT INTO coupon_batches (id, batch_number, points_per_coupon, total_coupons, valid_from, valid_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := dbtx.Exec(ctx, q,
		b.ID, b.BatchNumber, b.PointsPerCoupon, b.TotalCoupons, b.ValidFrom, b.ValidTo, b.CreatedBy,
	); err != nil {
		return infra.WrapRepoErr("failed to create coupon batch", err)
	}
	return nil
}

func (r *CouponRepository) CreateCode(ctx context.Context, dbtx db.DBTX, c shared.CodeRecord) error {
	const q = `
		INSERT INTO coupon_codes (id, code, batch_id, points_value, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := dbtx.Exec(ctx, q,
		c.ID, c.Code, c.BatchID, c.PointsValue, c.ValidFrom, c.ValidTo,
	); err != nil {
		return infra.WrapRepoErr("failed to create coupon code", err)
	}
	return nil
}
