//go:build unit || e2e

package builder

import (
	"time"

	"trust-rewards/internal/domain/coupon"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID          uuid.UUID
	Code        string
	BatchID     uuid.UUID
	BatchNumber string
	PointsValue int64
	Status      coupon.Status
	IsScanned   bool
	ValidFrom   time.Time
	ValidTo     time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "A1B2C3D4E5F6A7B8",
		BatchID:     uuid.New(),
		BatchNumber: "CPB-2025-001",
		PointsValue: 50,
		Status:      coupon.StatusActive,
		ValidFrom:   now.AddDate(0, 0, -1),
		ValidTo:     now.AddDate(0, 1, 0),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() *coupon.Code {
	return coupon.Reconstruct(
		b.ID, b.Code, b.BatchID, b.PointsValue,
		b.Status, b.IsScanned, b.ValidFrom, b.ValidTo,
	)
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:          b.ID,
		Code:        b.Code,
		BatchID:     b.BatchID,
		BatchNumber: b.BatchNumber,
		PointsValue: b.PointsValue,
		Status:      b.Status,
		IsScanned:   b.IsScanned,
		ValidFrom:   b.ValidFrom,
		ValidTo:     b.ValidTo,
	}
}
