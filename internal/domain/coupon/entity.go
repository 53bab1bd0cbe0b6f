package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyScanned = errors.New("coupon already scanned")
	ErrNotActive      = errors.New("coupon is not active")
	ErrNotYetValid    = errors.New("coupon not yet valid")
	ErrExpired        = errors.New("coupon has expired")
	ErrInvalidPoints  = errors.New("coupon points value must be positive")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusScanned  Status = "scanned"
	StatusExpired  Status = "expired"
)

// Code is one printed coupon. Scanning consumes it; it never becomes
// scannable again.
type Code struct {
	id          uuid.UUID
	code        string
	batchID     uuid.UUID
	pointsValue int64
	status      Status
	isScanned   bool
	validFrom   time.Time
	validTo     time.Time
}

func Reconstruct(
	id uuid.UUID,
	code string,
	batchID uuid.UUID,
	pointsValue int64,
	status Status,
	isScanned bool,
	validFrom, validTo time.Time,
) *Code {
	return &Code{
		id:          id,
		code:        code,
		batchID:     batchID,
		pointsValue: pointsValue,
		status:      status,
		isScanned:   isScanned,
		validFrom:   validFrom,
		validTo:     validTo,
	}
}

func (c *Code) ID() uuid.UUID      { return c.id }
func (c *Code) Value() string      { return c.code }
func (c *Code) BatchID() uuid.UUID { return c.batchID }
func (c *Code) PointsValue() int64 { return c.pointsValue }
func (c *Code) Status() Status     { return c.status }
func (c *Code) IsScanned() bool    { return c.isScanned }

// ValidateScan checks everything short of the store-level claim. The claim
// itself stays a conditional update; this pre-check only produces the precise
// rejection reason.
func (c *Code) ValidateScan(now time.Time) error {
	if c.isScanned {
		return ErrAlreadyScanned
	}
	if c.status != StatusActive {
		return ErrNotActive
	}
	if c.pointsValue <= 0 {
		return ErrInvalidPoints
	}
	day := now.Truncate(24 * time.Hour)
	if day.Before(c.validFrom.Truncate(24 * time.Hour)) {
		return ErrNotYetValid
	}
	if day.After(c.validTo.Truncate(24 * time.Hour)) {
		return ErrExpired
	}
	return nil
}

type BatchStatus string

const (
	BatchActive   BatchStatus = "active"
	BatchInactive BatchStatus = "inactive"
)

type Batch struct {
	id              uuid.UUID
	batchNumber     string
	pointsPerCoupon int64
	totalCoupons    int
	validFrom       time.Time
	validTo         time.Time
	status          BatchStatus
}

var (
	ErrInvalidPointsRange = errors.New("points per coupon must be between 1 and 10000")
	ErrInvalidCouponCount = errors.New("number of coupons must be between 1 and 1000")
	ErrInvalidWindow      = errors.New("valid_to must be after valid_from")
	ErrWindowInPast       = errors.New("valid_from cannot be in the past")
)

const (
	maxPointsPerCoupon = 10000
	maxCouponsPerBatch = 1000
)

func NewBatch(
	batchNumber string,
	pointsPerCoupon int64,
	totalCoupons int,
	validFrom, validTo time.Time,
	now time.Time,
) (*Batch, error) {
	if pointsPerCoupon < 1 || pointsPerCoupon > maxPointsPerCoupon {
		return nil, ErrInvalidPointsRange
	}
	if totalCoupons < 1 || totalCoupons > maxCouponsPerBatch {
		return nil, ErrInvalidCouponCount
	}
	if !validTo.After(validFrom) {
		return nil, ErrInvalidWindow
	}
	if validFrom.Truncate(24 * time.Hour).Before(now.Truncate(24 * time.Hour)) {
		return nil, ErrWindowInPast
	}
	return &Batch{
		id:              uuid.New(),
		batchNumber:     batchNumber,
		pointsPerCoupon: pointsPerCoupon,
		totalCoupons:    totalCoupons,
		validFrom:       validFrom,
		validTo:         validTo,
		status:          BatchActive,
	}, nil
}

func (b *Batch) ID() uuid.UUID          { return b.id }
func (b *Batch) BatchNumber() string    { return b.batchNumber }
func (b *Batch) PointsPerCoupon() int64 { return b.pointsPerCoupon }
func (b *Batch) TotalCoupons() int      { return b.totalCoupons }
func (b *Batch) ValidFrom() time.Time   { return b.validFrom }
func (b *Batch) ValidTo() time.Time     { return b.validTo }
func (b *Batch) Status() BatchStatus    { return b.status }
