package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LedgerEntryView struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	WorkerID        uuid.UUID `json:"worker_id"`
	WorkerName      string    `json:"worker_name"`
	EntryType       string    `json:"entry_type"`
	Amount          int64     `json:"amount"`
	PreviousBalance int64     `json:"previous_balance"`
	NewBalance      int64     `json:"new_balance"`
	Description     string    `json:"description"`
	ReferenceType   string    `json:"reference_type,omitempty"`
	ReferenceID     string    `json:"reference_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type LedgerFilter struct {
	WorkerID  *uuid.UUID
	EntryType *string
	From      *time.Time
	To        *time.Time
}

// LedgerSummary aggregates the admin ledger view: signed totals plus a
// per-type breakdown.
type LedgerSummary struct {
	TotalCredited int64            `json:"total_credited"`
	TotalDebited  int64            `json:"total_debited"`
	EntriesByType map[string]int64 `json:"entries_by_type"`
}

// WalletTotals is the per-worker earned/redeemed aggregate backing the wallet
// overview.
type WalletTotals struct {
	TotalEarned   int64
	TotalRedeemed int64
}

type LedgerQueries interface {
	List(ctx context.Context, filter LedgerFilter, page PageRequest) ([]*LedgerEntryView, Pagination, error)
	Summary(ctx context.Context, filter LedgerFilter) (*LedgerSummary, error)
}

type LedgerViewRepo interface {
	FindPage(ctx context.Context, filter LedgerFilter, limit, offset int32) ([]*LedgerEntryView, error)
	Count(ctx context.Context, filter LedgerFilter) (int64, error)
	Aggregate(ctx context.Context, filter LedgerFilter) (*LedgerSummary, error)
	WalletTotals(ctx context.Context, workerID uuid.UUID) (*WalletTotals, error)
	Recent(ctx context.Context, workerID uuid.UUID, limit int32) ([]*LedgerEntryView, error)
	// SumAmounts replays the signed amounts for one worker; by construction it
	// must equal the wallet balance at all times.
	SumAmounts(ctx context.Context, workerID uuid.UUID) (int64, error)
}

type ledgerQueriesImpl struct {
	repo LedgerViewRepo
}

func NewLedgerQueries(repo LedgerViewRepo) LedgerQueries {
	return &ledgerQueriesImpl{repo: repo}
}

func (q *ledgerQueriesImpl) List(ctx context.Context, filter LedgerFilter, page PageRequest) ([]*LedgerEntryView, Pagination, error) {
	page = page.Normalize()

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

func (q *ledgerQueriesImpl) Summary(ctx context.Context, filter LedgerFilter) (*LedgerSummary, error) {
	return q.repo.Aggregate(ctx, filter)
}
