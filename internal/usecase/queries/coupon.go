package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BatchListItem struct {
	ID              uuid.UUID `json:"id"`
	BatchNumber     string    `json:"batch_number"`
	PointsPerCoupon int64     `json:"points_per_coupon"`
	TotalCoupons    int       `json:"total_coupons"`
	ScannedCount    int64     `json:"scanned_count"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type CouponListItem struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	BatchNumber string     `json:"batch_number"`
	PointsValue int64      `json:"points_value"`
	Status      string     `json:"status"`
	IsScanned   bool       `json:"is_scanned"`
	ScannedBy   *uuid.UUID `json:"scanned_by,omitempty"`
	ScannedAt   *time.Time `json:"scanned_at,omitempty"`
	ValidFrom   time.Time  `json:"valid_from"`
	ValidTo     time.Time  `json:"valid_to"`
}

type ScanHistoryItem struct {
	Code         string    `json:"code"`
	BatchNumber  string    `json:"batch_number"`
	PointsEarned int64     `json:"points_earned"`
	ScannedAt    time.Time `json:"scanned_at"`
}

type CouponFilter struct {
	BatchID *uuid.UUID
	Status  *string
}

type CouponQueries interface {
	ListBatches(ctx context.Context, page PageRequest) ([]*BatchListItem, Pagination, error)
	ListCodes(ctx context.Context, filter CouponFilter, page PageRequest) ([]*CouponListItem, Pagination, error)
	ScanHistory(ctx context.Context, workerID uuid.UUID, page PageRequest) ([]*ScanHistoryItem, Pagination, error)
}

type CouponViewRepo interface {
	FindBatchPage(ctx context.Context, limit, offset int32) ([]*BatchListItem, error)
	CountBatches(ctx context.Context) (int64, error)
	FindCodePage(ctx context.Context, filter CouponFilter, limit, offset int32) ([]*CouponListItem, error)
	CountCodes(ctx context.Context, filter CouponFilter) (int64, error)
	FindScanHistoryPage(ctx context.Context, workerID uuid.UUID, limit, offset int32) ([]*ScanHistoryItem, error)
	CountScanHistory(ctx context.Context, workerID uuid.UUID) (int64, error)
}

type couponQueriesImpl struct {
	repo CouponViewRepo
}

func NewCouponQueries(repo CouponViewRepo) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) ListBatches(ctx context.Context, page PageRequest) ([]*BatchListItem, Pagination, error) {
	page = page.Normalize()

	total, err := q.repo.CountBatches(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	rows, err := q.repo.FindBatchPage(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return rows, NewPagination(page, total), nil
}

func (q *couponQueriesImpl) ListCodes(ctx context.Context, filter CouponFilter, page PageRequest) ([]*CouponListItem, Pagination, error) {
	page = page.Normalize()

	total, err := q.repo.CountCodes(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	rows, err := q.repo.FindCodePage(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return rows, NewPagination(page, total), nil
}

func (q *couponQueriesImpl) ScanHistory(ctx context.Context, workerID uuid.UUID, page PageRequest) ([]*ScanHistoryItem, Pagination, error) {
	page = page.Normalize()

	total, err := q.repo.CountScanHistory(ctx, workerID)
	if err != nil {
		return nil, Pagination{}, err
	}

	rows, err := q.repo.FindScanHistoryPage(ctx, workerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return rows, NewPagination(page, total), nil
}
