//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/usecase/queries"
	queriesmock "trust-rewards/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWalletQueries_Overview(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	workers := queriesmock.NewMockWorkerViewRepo(ctrl)
	ledgerRepo := queriesmock.NewMockLedgerViewRepo(ctrl)
	redemptions := queriesmock.NewMockRedemptionViewRepo(ctrl)
	q := queries.NewWalletQueries(workers, ledgerRepo, redemptions, clock.NewMockClock(now))

	workers.EXPECT().FindOverview(ctx, workerID).Return(&queries.WorkerOverviewRow{
		ID:             workerID,
		Name:           "Ramesh Kumar",
		WalletBalance:  450,
		CouponsScanned: 12,
	}, nil)
	ledgerRepo.EXPECT().WalletTotals(ctx, workerID).Return(&queries.WalletTotals{
		TotalEarned:   750,
		TotalRedeemed: 300,
	}, nil)
	redemptions.EXPECT().CountByWorker(ctx, workerID).Return(&queries.WorkerRedemptionCounts{
		Pending:  1,
		Redeemed: 2,
	}, nil)
	ledgerRepo.EXPECT().Recent(ctx, workerID, int32(10)).Return([]*queries.LedgerEntryView{
		{Code: "TXN-2025-005", EntryType: "COUPON_SCAN", Amount: 50, CreatedAt: now.Add(-2 * time.Hour)},
		{Code: "TXN-2025-004", EntryType: "COUPON_SCAN", Amount: 50, CreatedAt: now.Add(-26 * time.Hour)},
		{Code: "TXN-2025-003", EntryType: "GIFT_REDEMPTION_REQUEST", Amount: -300, CreatedAt: now.AddDate(0, 0, -5)},
	}, nil)

	overview, err := q.Overview(ctx, workerID)
	require.NoError(t, err)

	assert.Equal(t, workerID, overview.WorkerID)
	assert.Equal(t, "Ramesh Kumar", overview.WorkerName)
	assert.Equal(t, int64(450), overview.Balance)
	assert.Equal(t, int64(750), overview.TotalEarned)
	assert.Equal(t, int64(300), overview.TotalRedeemed)
	assert.Equal(t, 12, overview.CouponsScanned)
	assert.Equal(t, int64(1), overview.RedemptionsPending)
	assert.Equal(t, int64(2), overview.RedemptionsCompleted)

	require.Len(t, overview.RecentEntries, 3)
	// Labels compare calendar days, not 24h windows: 26 hours ago at 10:00
	// still falls on yesterday.
	assert.Equal(t, "Today", overview.RecentEntries[0].When)
	assert.Equal(t, "Yesterday", overview.RecentEntries[1].When)
	assert.Equal(t, "5 days ago", overview.RecentEntries[2].When)
}

func TestWalletQueries_Ledger_ScopesToWorker(t *testing.T) {
	ctx := context.Background()
	workerID := uuid.New()

	ctrl := gomock.NewController(t)
	workers := queriesmock.NewMockWorkerViewRepo(ctrl)
	ledgerRepo := queriesmock.NewMockLedgerViewRepo(ctrl)
	redemptions := queriesmock.NewMockRedemptionViewRepo(ctrl)
	q := queries.NewWalletQueries(workers, ledgerRepo, redemptions, clock.NewRealClock())

	// Whatever filter the caller passes, the worker scope must be forced.
	matchScoped := gomock.Cond(func(filter queries.LedgerFilter) bool {
		return filter.WorkerID != nil && *filter.WorkerID == workerID
	})

	ledgerRepo.EXPECT().Count(ctx, matchScoped).Return(int64(1), nil)
	ledgerRepo.EXPECT().FindPage(ctx, matchScoped, int32(20), int32(0)).
		Return([]*queries.LedgerEntryView{{Code: "TXN-2025-001"}}, nil)

	otherWorker := uuid.New()
	entries, pagination, err := q.Ledger(ctx, workerID, queries.LedgerFilter{WorkerID: &otherWorker}, queries.PageRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), pagination.Total)
	assert.Equal(t, 1, pagination.Page)
}
