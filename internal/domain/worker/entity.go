package worker

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInactive        = errors.New("worker is not active")
	ErrNegativeBalance = errors.New("wallet balance cannot go negative")
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusBlocked  Status = "Blocked"
)

func (s Status) String() string { return string(s) }

type Worker struct {
	id             uuid.UUID
	name           string
	mobile         string
	workerType     string
	status         Status
	walletBalance  int64
	couponsScanned int
	lastActivityAt *time.Time
}

func Reconstruct(
	id uuid.UUID,
	name, mobile, workerType string,
	status Status,
	walletBalance int64,
	couponsScanned int,
	lastActivityAt *time.Time,
) *Worker {
	return &Worker{
		id:             id,
		name:           name,
		mobile:         mobile,
		workerType:     workerType,
		status:         status,
		walletBalance:  walletBalance,
		couponsScanned: couponsScanned,
		lastActivityAt: lastActivityAt,
	}
}

func (w *Worker) ID() uuid.UUID             { return w.id }
func (w *Worker) Name() string              { return w.name }
func (w *Worker) Mobile() string            { return w.mobile }
func (w *Worker) WorkerType() string        { return w.workerType }
func (w *Worker) Status() Status            { return w.status }
func (w *Worker) WalletBalance() int64      { return w.walletBalance }
func (w *Worker) CouponsScanned() int       { return w.couponsScanned }
func (w *Worker) LastActivityAt() *time.Time { return w.lastActivityAt }

func (w *Worker) IsActive() bool {
	return w.status == StatusActive
}

// EnsureActive gates every balance-affecting operation.
func (w *Worker) EnsureActive() error {
	if !w.IsActive() {
		return ErrInactive
	}
	return nil
}

// CanAfford reports whether a debit of points would keep the balance >= 0.
// The store-level conditional update remains the authoritative guard.
func (w *Worker) CanAfford(points int64) bool {
	return w.walletBalance >= points
}
