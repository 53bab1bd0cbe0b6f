package shared

import (
	"time"

	"trust-rewards/internal/domain/coupon"
	"trust-rewards/internal/domain/worker"

	"github.com/google/uuid"
)

type WorkerSnapshot struct {
	ID             uuid.UUID
	Name           string
	Mobile         string
	WorkerType     string
	Status         worker.Status
	WalletBalance  int64
	CouponsScanned int
	LastActivityAt *time.Time
}

func (s *WorkerSnapshot) ToDomain() *worker.Worker {
	return worker.Reconstruct(
		s.ID, s.Name, s.Mobile, s.WorkerType,
		s.Status, s.WalletBalance, s.CouponsScanned, s.LastActivityAt,
	)
}

type CouponSnapshot struct {
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

func (s *CouponSnapshot) ToDomain() *coupon.Code {
	return coupon.Reconstruct(
		s.ID, s.Code, s.BatchID, s.PointsValue,
		s.Status, s.IsScanned, s.ValidFrom, s.ValidTo,
	)
}

type GiftSnapshot struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Category       string
	PointsRequired int64
	Status         string
}

func (s *GiftSnapshot) IsActive() bool {
	return s.Status == "active"
}

type RedemptionSnapshot struct {
	ID          uuid.UUID
	Code        string
	WorkerID    uuid.UUID
	GiftID      uuid.UUID
	GiftName    string
	WorkerName  string
	PointsUsed  int64
	Status      string
	RequestedAt time.Time
}

// BalanceChange carries the pre/post balance pair observed by one atomic
// wallet update; ledger entries are built from exactly these numbers.
type BalanceChange struct {
	Previous int64
	New      int64
}

type ScanRecord struct {
	CouponID    uuid.UUID
	Code        string
	BatchNumber string
	WorkerID    uuid.UUID
	Points      int64
	ScannedAt   time.Time
}

type BatchRecord struct {
	ID              uuid.UUID
	BatchNumber     string
	PointsPerCoupon int64
	TotalCoupons    int
	ValidFrom       time.Time
	ValidTo         time.Time
	CreatedBy       *uuid.UUID
}

type CodeRecord struct {
	ID          uuid.UUID
	Code        string
	BatchID     uuid.UUID
	PointsValue int64
	ValidFrom   time.Time
	ValidTo     time.Time
}
