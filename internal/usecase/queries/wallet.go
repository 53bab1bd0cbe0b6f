package queries

import (
	"context"
	"fmt"
	"time"

	"trust-rewards/internal/pkg/clock"

	"github.com/google/uuid"
)

type WalletOverview struct {
	WorkerID             uuid.UUID          `json:"worker_id"`
	WorkerName           string             `json:"worker_name"`
	Balance              int64              `json:"balance"`
	TotalEarned          int64              `json:"total_earned"`
	TotalRedeemed        int64              `json:"total_redeemed"`
	CouponsScanned       int                `json:"coupons_scanned"`
	RedemptionsPending   int64              `json:"redemptions_pending"`
	RedemptionsCompleted int64              `json:"redemptions_completed"`
	RecentEntries        []*WalletEntryView `json:"recent_entries"`
}

// WalletEntryView is the app-facing slice of a ledger entry; When carries the
// "Today" / "Yesterday" / "N days ago" label the mobile client renders as-is.
type WalletEntryView struct {
	Code        string    `json:"code"`
	EntryType   string    `json:"entry_type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	When        string    `json:"when"`
}

type WorkerViewRepo interface {
	FindOverview(ctx context.Context, id uuid.UUID) (*WorkerOverviewRow, error)
}

type WorkerOverviewRow struct {
	ID             uuid.UUID
	Name           string
	WalletBalance  int64
	CouponsScanned int
}

type WalletQueries interface {
	Overview(ctx context.Context, workerID uuid.UUID) (*WalletOverview, error)
	Ledger(ctx context.Context, workerID uuid.UUID, filter LedgerFilter, page PageRequest) ([]*LedgerEntryView, Pagination, error)
}

const recentEntriesLimit = 10

type walletQueriesImpl struct {
	workers     WorkerViewRepo
	ledger      LedgerViewRepo
	redemptions RedemptionViewRepo
	clock       clock.Clock
}

func NewWalletQueries(workers WorkerViewRepo, ledger LedgerViewRepo, redemptions RedemptionViewRepo, clock clock.Clock) WalletQueries {
	return &walletQueriesImpl{workers: workers, ledger: ledger, redemptions: redemptions, clock: clock}
}

func (q *walletQueriesImpl) Overview(ctx context.Context, workerID uuid.UUID) (*WalletOverview, error) {
	worker, err := q.workers.FindOverview(ctx, workerID)
	if err != nil {
		return nil, err
	}

	totals, err := q.ledger.WalletTotals(ctx, workerID)
	if err != nil {
		return nil, err
	}

	counts, err := q.redemptions.CountByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	recent, err := q.ledger.Recent(ctx, workerID, recentEntriesLimit)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	entries := make([]*WalletEntryView, 0, len(recent))
	for _, row := range recent {
		entries = append(entries, &WalletEntryView{
			Code:        row.Code,
			EntryType:   row.EntryType,
			Amount:      row.Amount,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			When:        relativeDayLabel(row.CreatedAt, now),
		})
	}

	return &WalletOverview{
		WorkerID:             worker.ID,
		WorkerName:           worker.Name,
		Balance:              worker.WalletBalance,
		TotalEarned:          totals.TotalEarned,
		TotalRedeemed:        totals.TotalRedeemed,
		CouponsScanned:       worker.CouponsScanned,
		RedemptionsPending:   counts.Pending,
		RedemptionsCompleted: counts.Redeemed,
		RecentEntries:        entries,
	}, nil
}

func (q *walletQueriesImpl) Ledger(ctx context.Context, workerID uuid.UUID, filter LedgerFilter, page PageRequest) ([]*LedgerEntryView, Pagination, error) {
	filter.WorkerID = &workerID
	page = page.Normalize()

	total, err := q.ledger.Count(ctx, filter)
	if err != nil {
		return nil, Pagination{}, err
	}

	rows, err := q.ledger.FindPage(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, Pagination{}, err
	}

	return rows, NewPagination(page, total), nil
}

// relativeDayLabel compares calendar days in local time, not 24h windows:
// an entry from 23:59 is "Yesterday" one minute later.
func relativeDayLabel(at, now time.Time) string {
	atDay := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := int(nowDay.Sub(atDay).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
