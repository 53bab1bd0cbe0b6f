package redemption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPointsUsed = errors.New("points used must be positive")
	ErrNotOwner          = errors.New("redemption belongs to another worker")
	ErrNotCancellable    = errors.New("only pending redemptions can be cancelled by the worker")
)

// Request is one debit-against-gift record advancing through the approval
// lifecycle. Points are debited when the request is created and restored
// exactly once if it ends cancelled.
type Request struct {
	id          uuid.UUID
	code        string
	workerID    uuid.UUID
	giftID      uuid.UUID
	pointsUsed  int64
	status      Status
	requestedAt time.Time
}

func New(code string, workerID, giftID uuid.UUID, pointsUsed int64, requestedAt time.Time) (*Request, error) {
	if pointsUsed <= 0 {
		return nil, ErrInvalidPointsUsed
	}
	return &Request{
		id:          uuid.New(),
		code:        code,
		workerID:    workerID,
		giftID:      giftID,
		pointsUsed:  pointsUsed,
		status:      StatusPending,
		requestedAt: requestedAt,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	workerID, giftID uuid.UUID,
	pointsUsed int64,
	status Status,
	requestedAt time.Time,
) *Request {
	return &Request{
		id:          id,
		code:        code,
		workerID:    workerID,
		giftID:      giftID,
		pointsUsed:  pointsUsed,
		status:      status,
		requestedAt: requestedAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) Code() string           { return r.code }
func (r *Request) WorkerID() uuid.UUID    { return r.workerID }
func (r *Request) GiftID() uuid.UUID      { return r.giftID }
func (r *Request) PointsUsed() int64      { return r.pointsUsed }
func (r *Request) Status() Status         { return r.status }
func (r *Request) RequestedAt() time.Time { return r.requestedAt }

// ValidateWorkerCancel enforces the narrower worker-side rule: only the
// owner, and only while still pending. Admins go through ValidateTransition
// directly and may also cancel approved requests.
func (r *Request) ValidateWorkerCancel(workerID uuid.UUID) error {
	if r.workerID != workerID {
		return ErrNotOwner
	}
	if r.status != StatusPending {
		return ErrNotCancellable
	}
	return nil
}

// HistoryEntry is one row of the audit trail appended on every transition.
type HistoryEntry struct {
	Status    Status
	ActorID   *uuid.UUID
	ActorName string
	Comment   string
	ChangedAt time.Time
}
