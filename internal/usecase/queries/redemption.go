package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RedemptionListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	WorkerID    uuid.UUID `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	GiftID      uuid.UUID `json:"gift_id"`
	GiftName    string    `json:"gift_name"`
	PointsUsed  int64     `json:"points_used"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

type StatusChangeView struct {
	Status    string     `json:"status"`
	ActorID   *uuid.UUID `json:"actor_id,omitempty"`
	ActorName string     `json:"actor_name,omitempty"`
	Comment   string     `json:"comment,omitempty"`
	ChangedAt time.Time  `json:"changed_at"`
}

type RedemptionDetail struct {
	ID           uuid.UUID           `json:"id"`
	Code         string              `json:"code"`
	WorkerID     uuid.UUID           `json:"worker_id"`
	WorkerName   string              `json:"worker_name"`
	WorkerMobile string              `json:"worker_mobile"`
	GiftID       uuid.UUID           `json:"gift_id"`
	GiftName     string              `json:"gift_name"`
	GiftCategory string              `json:"gift_category"`
	PointsUsed   int64               `json:"points_used"`
	Status       string              `json:"status"`
	RequestedAt  time.Time           `json:"requested_at"`
	ApprovedAt   *time.Time          `json:"approved_at,omitempty"`
	RedeemedAt   *time.Time          `json:"redeemed_at,omitempty"`
	CancelledAt  *time.Time          `json:"cancelled_at,omitempty"`
	Timeline     []*StatusChangeView `json:"timeline"`
}

// RedemptionStats is the header block on the admin list: per-status counts
// plus the points at stake.
type RedemptionStats struct {
	Pending       int64 `json:"pending"`
	Approved      int64 `json:"approved"`
	Redeemed      int64 `json:"redeemed"`
	Cancelled     int64 `json:"cancelled"`
	TotalPoints   int64 `json:"total_points"`
	PendingPoints int64 `json:"pending_points"`
}

// WorkerRedemptionCounts backs the wallet overview counters.
type WorkerRedemptionCounts struct {
	Pending  int64
	Redeemed int64
}

type RedemptionFilter struct {
	Status   *string
	WorkerID *uuid.UUID
	GiftID   *uuid.UUID
	From     *time.Time
	To       *time.Time
	// Search matches the redemption code, worker name, or gift name.
	Search string
}

type RedemptionQueries interface {
	List(ctx context.Context, filter RedemptionFilter, page PageRequest) ([]*RedemptionListItem, Pagination, *RedemptionStats, error)
	Detail(ctx context.Context, id uuid.UUID) (*RedemptionDetail, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID, page PageRequest) ([]*RedemptionListItem, Pagination, error)
}

type RedemptionViewRepo interface {
	FindPage(ctx context.Context, filter RedemptionFilter, limit, offset int32) ([]*RedemptionListItem, error)
	Count(ctx context.Context, filter RedemptionFilter) (int64, error)
	Stats(ctx context.Context, filter RedemptionFilter) (*RedemptionStats, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*RedemptionDetail, error)
	FindTimeline(ctx context.Context, id uuid.UUID) ([]*StatusChangeView, error)
	CountByWorker(ctx context.Context, workerID uuid.UUID) (*WorkerRedemptionCounts, error)
}

type redemptionQueriesImpl struct {
	repo RedemptionViewRepo
}

func NewRedemptionQueries(repo RedemptionViewRepo) RedemptionQueries {
	return &redemptionQueriesImpl{repo: repo}
}

func (q *redemptionQueriesImpl) List(ctx context.Context, filter RedemptionFilter, page PageRequest) ([]*RedemptionListItem, Pagination, *RedemptionStats, error) {
	page = page.Normalize()

	total, err := q.repo.Count(ctx, filter)
	if err != nil {
		return nil, Pagination{}, nil, err
	}

	rows, err := q.repo.FindPage(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, nil, err
	}

	stats, err := q.repo.Stats(ctx, filter)
	if err != nil {
		return nil, Pagination{}, nil, err
	}

	return rows, NewPagination(page, total), stats, nil
}

func (q *redemptionQueriesImpl) Detail(ctx context.Context, id uuid.UUID) (*RedemptionDetail, error) {
	detail, err := q.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	timeline, err := q.repo.FindTimeline(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Timeline = timeline

	return detail, nil
}

func (q *redemptionQueriesImpl) ListByWorker(ctx context.Context, workerID uuid.UUID, page PageRequest) ([]*RedemptionListItem, Pagination, error) {
	page = page.Normalize()
	filter := RedemptionFilter{WorkerID: &workerID}

	total, err := q.repo.Count(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	rows, err := q.repo.FindPage(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return rows, NewPagination(page, total), nil
}
