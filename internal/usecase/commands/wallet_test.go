//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/internal/usecase/shared"
	"trust-rewards/tests/common/builder"
	sharedmock "trust-rewards/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWalletFixture(t *testing.T, now time.Time) (commands.WalletCommands, *sharedmock.MockUnitOfWork, *txFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	f := newTxFixture(ctrl)
	gen := shared.NewCodeGenerator(f.sequences, clock.NewMockClock(now))
	uc := commands.NewWalletUseCase(uow, gen, clock.NewMockClock(now))
	return uc, uow, f
}

func TestWalletCommands_Adjust(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	admin := commands.Actor{ID: uuid.New(), Name: "Admin"}

	t.Run("rejects empty input before opening a transaction", func(t *testing.T) {
		cases := []struct {
			name   string
			amount int64
			reason string
		}{
			{name: "zero amount", amount: 0, reason: "correction"},
			{name: "missing reason", amount: 100, reason: ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, _, _ := newWalletFixture(t, now)

				_, err := uc.Adjust(ctx, commands.AdjustWalletInput{
					WorkerID: uuid.New(),
					Amount:   tc.amount,
					Reason:   tc.reason,
					Actor:    admin,
				})
				require.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})

	t.Run("positive amount credits the wallet", func(t *testing.T) {
		uc, uow, f := newWalletFixture(t, now)
		workerB := builder.NewWorkerBuilder()

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)
		f.workers.EXPECT().Credit(ctx, nil, workerB.ID, int64(250), 0, now).
			Return(shared.BalanceChange{Previous: 500, New: 750}, nil)
		f.sequences.EXPECT().Next(ctx, nil, "ledger_TXN_2025").Return(int64(40), nil)
		f.ledger.EXPECT().Append(ctx, nil, gomock.Cond(func(e *ledger.Entry) bool {
			return e.Type == ledger.TypeAdminAdjustment &&
				e.Amount == 250 &&
				e.NewBalance == 750 &&
				e.CreatedBy != nil && *e.CreatedBy == admin.ID
		})).Return(nil)

		result, err := uc.Adjust(ctx, commands.AdjustWalletInput{
			WorkerID: workerB.ID,
			Amount:   250,
			Reason:   "missed scan credit",
			Actor:    admin,
		})
		require.NoError(t, err)
		assert.Equal(t, "TXN-2025-040", result.LedgerCode)
		assert.Equal(t, int64(750), result.WalletBalance)
	})

	t.Run("negative amount goes through the conditional debit", func(t *testing.T) {
		uc, uow, f := newWalletFixture(t, now)
		workerB := builder.NewWorkerBuilder()

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)
		f.workers.EXPECT().DebitIfSufficient(ctx, nil, workerB.ID, int64(100), now).
			Return(shared.BalanceChange{Previous: 500, New: 400}, nil)
		f.sequences.EXPECT().Next(ctx, nil, "ledger_TXN_2025").Return(int64(41), nil)
		f.ledger.EXPECT().Append(ctx, nil, gomock.Cond(func(e *ledger.Entry) bool {
			return e.Type == ledger.TypeAdminAdjustment && e.Amount == -100 && e.NewBalance == 400
		})).Return(nil)

		result, err := uc.Adjust(ctx, commands.AdjustWalletInput{
			WorkerID: workerB.ID,
			Amount:   -100,
			Reason:   "duplicate scan reversal",
			Actor:    admin,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(400), result.WalletBalance)
	})

	t.Run("debit past the balance fails and writes nothing", func(t *testing.T) {
		uc, uow, f := newWalletFixture(t, now)
		workerB := builder.NewWorkerBuilder().With(func(b *builder.WorkerBuilder) { b.WalletBalance = 50 })

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)
		f.workers.EXPECT().DebitIfSufficient(ctx, nil, workerB.ID, int64(100), now).
			Return(shared.BalanceChange{}, infra.WrapRepoErr("insufficient balance", nil, infra.KindConflict))

		_, err := uc.Adjust(ctx, commands.AdjustWalletInput{
			WorkerID: workerB.ID,
			Amount:   -100,
			Reason:   "duplicate scan reversal",
			Actor:    admin,
		})
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("unknown worker", func(t *testing.T) {
		uc, uow, f := newWalletFixture(t, now)
		workerID := uuid.New()

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerID).
			Return(nil, infra.WrapRepoErr("worker not found", nil, infra.KindNotFound))

		_, err := uc.Adjust(ctx, commands.AdjustWalletInput{
			WorkerID: workerID,
			Amount:   100,
			Reason:   "correction",
			Actor:    admin,
		})
		require.ErrorIs(t, err, errs.ErrWorkerNotFound)
	})
}
