//go:build unit

package commands_test

import (
	"context"

	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"
	sharedmock "trust-rewards/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txFixture wires a MockTx to one mock per repository so command tests can
// set expectations on the ports the transaction hands out.
type txFixture struct {
	tx          *sharedmock.MockTx
	workers     *sharedmock.MockWorkerRepository
	coupons     *sharedmock.MockCouponRepository
	ledger      *sharedmock.MockLedgerRepository
	redemptions *sharedmock.MockRedemptionRepository
	challenges  *sharedmock.MockOTPRepository
	sequences   *sharedmock.MockSequenceRepository
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		tx:          sharedmock.NewMockTx(ctrl),
		workers:     sharedmock.NewMockWorkerRepository(ctrl),
		coupons:     sharedmock.NewMockCouponRepository(ctrl),
		ledger:      sharedmock.NewMockLedgerRepository(ctrl),
		redemptions: sharedmock.NewMockRedemptionRepository(ctrl),
		challenges:  sharedmock.NewMockOTPRepository(ctrl),
		sequences:   sharedmock.NewMockSequenceRepository(ctrl),
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Workers().Return(f.workers).AnyTimes()
	f.tx.EXPECT().Coupons().Return(f.coupons).AnyTimes()
	f.tx.EXPECT().Ledger().Return(f.ledger).AnyTimes()
	f.tx.EXPECT().Redemptions().Return(f.redemptions).AnyTimes()
	f.tx.EXPECT().Challenges().Return(f.challenges).AnyTimes()
	f.tx.EXPECT().Sequences().Return(f.sequences).AnyTimes()
	return f
}

// expectWithin runs the transaction body against the fixture's MockTx.
func expectWithin(uow *sharedmock.MockUnitOfWork, f *txFixture) *gomock.Call {
	return uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

// expectWithDB runs the read body with a nil DBTX; repository mocks accept it.
func expectWithDB(uow *sharedmock.MockUnitOfWork) *gomock.Call {
	return uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}
