package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrZeroAmount      = errors.New("ledger amount cannot be zero")
	ErrBalanceMismatch = errors.New("new balance must equal previous balance plus amount")
	ErrWrongSign       = errors.New("amount sign does not match entry type")
)

type EntryType string

const (
	TypeCouponScan             EntryType = "COUPON_SCAN"
	TypeGiftRedemptionRequest  EntryType = "GIFT_REDEMPTION_REQUEST"
	TypeRedemptionCancellation EntryType = "REDEMPTION_CANCELLATION"
	TypeAdminAdjustment        EntryType = "ADMIN_ADJUSTMENT"
)

func (t EntryType) String() string { return string(t) }

// IsCredit reports the expected sign for the type. ADMIN_ADJUSTMENT may go
// either way and reports false without implying a debit.
func (t EntryType) isSigned() (credit bool, enforced bool) {
	switch t {
	case TypeCouponScan, TypeRedemptionCancellation:
		return true, true
	case TypeGiftRedemptionRequest:
		return false, true
	}
	return false, false
}

// Entry is one immutable balance-affecting record. Amount is signed; replaying
// all amounts in order from the initial balance reproduces the wallet balance.
type Entry struct {
	ID              uuid.UUID
	Code            string
	WorkerID        uuid.UUID
	Type            EntryType
	Amount          int64
	PreviousBalance int64
	NewBalance      int64
	Description     string
	ReferenceType   string
	ReferenceID     string
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
}

// NewEntry validates the arithmetic the append-only store relies on. It never
// mutates anything; repositories insert the result verbatim.
func NewEntry(
	code string,
	workerID uuid.UUID,
	entryType EntryType,
	amount, previousBalance, newBalance int64,
	description, referenceType, referenceID string,
	createdBy *uuid.UUID,
	at time.Time,
) (*Entry, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	if newBalance != previousBalance+amount {
		return nil, ErrBalanceMismatch
	}
	if credit, enforced := entryType.isSigned(); enforced {
		if credit && amount < 0 || !credit && amount > 0 {
			return nil, ErrWrongSign
		}
	}
	return &Entry{
		ID:              uuid.New(),
		Code:            code,
		WorkerID:        workerID,
		Type:            entryType,
		Amount:          amount,
		PreviousBalance: previousBalance,
		NewBalance:      newBalance,
		Description:     description,
		ReferenceType:   referenceType,
		ReferenceID:     referenceID,
		CreatedBy:       createdBy,
		CreatedAt:       at,
	}, nil
}
