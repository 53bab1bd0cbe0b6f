//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/internal/usecase/shared"
	sharedmock "trust-rewards/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBatchFixture(t *testing.T, now time.Time) (commands.CouponBatchCommands, *sharedmock.MockUnitOfWork, *txFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	f := newTxFixture(ctrl)
	gen := shared.NewCodeGenerator(f.sequences, clock.NewMockClock(now))
	uc := commands.NewCouponBatchUseCase(uow, gen, clock.NewMockClock(now))
	return uc, uow, f
}

var couponCodePattern = regexp.MustCompile(`^[0-9A-F]{16}$`)

func TestCouponBatchCommands_Generate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	adminID := uuid.New()

	validInput := func() commands.GenerateBatchInput {
		return commands.GenerateBatchInput{
			PointsPerCoupon: 50,
			TotalCoupons:    3,
			ValidFrom:       now.AddDate(0, 0, 1),
			ValidTo:         now.AddDate(0, 1, 0),
			CreatedBy:       &adminID,
		}
	}

	t.Run("mints the batch number and one code per coupon", func(t *testing.T) {
		uc, uow, f := newBatchFixture(t, now)

		expectWithin(uow, f)
		f.sequences.EXPECT().Next(ctx, nil, "coupon_batch_CPB_2025").Return(int64(7), nil)
		f.coupons.EXPECT().CreateBatch(ctx, nil, gomock.Cond(func(r shared.BatchRecord) bool {
			return r.BatchNumber == "CPB-2025-007" &&
				r.PointsPerCoupon == 50 &&
				r.TotalCoupons == 3 &&
				r.CreatedBy != nil && *r.CreatedBy == adminID
		})).Return(nil)
		f.coupons.EXPECT().CreateCode(ctx, nil, gomock.Cond(func(r shared.CodeRecord) bool {
			return couponCodePattern.MatchString(r.Code) && r.PointsValue == 50
		})).Return(nil).Times(3)

		result, err := uc.Generate(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, "CPB-2025-007", result.BatchNumber)
		require.Len(t, result.Codes, 3)
		seen := make(map[string]bool, len(result.Codes))
		for _, code := range result.Codes {
			assert.Regexp(t, couponCodePattern, code)
			assert.False(t, seen[code], "duplicate code %s in one batch", code)
			seen[code] = true
		}
	})

	t.Run("keeps an explicitly supplied batch number", func(t *testing.T) {
		uc, uow, f := newBatchFixture(t, now)
		input := validInput()
		input.BatchNumber = "CPB-2025-099"
		input.TotalCoupons = 1

		expectWithin(uow, f)
		f.coupons.EXPECT().CreateBatch(ctx, nil, gomock.Cond(func(r shared.BatchRecord) bool {
			return r.BatchNumber == "CPB-2025-099"
		})).Return(nil)
		f.coupons.EXPECT().CreateCode(ctx, nil, gomock.Any()).Return(nil)

		result, err := uc.Generate(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "CPB-2025-099", result.BatchNumber)
	})

	t.Run("domain validation failures roll the batch back", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.GenerateBatchInput)
		}{
			{name: "zero points", mutate: func(in *commands.GenerateBatchInput) { in.PointsPerCoupon = 0 }},
			{name: "zero coupons", mutate: func(in *commands.GenerateBatchInput) { in.TotalCoupons = 0 }},
			{name: "inverted window", mutate: func(in *commands.GenerateBatchInput) {
				in.ValidFrom = now.AddDate(0, 1, 0)
				in.ValidTo = now.AddDate(0, 0, 1)
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, uow, f := newBatchFixture(t, now)
				input := validInput()
				input.BatchNumber = "CPB-2025-001"
				tc.mutate(&input)

				expectWithin(uow, f)

				_, err := uc.Generate(ctx, input)
				require.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})

	t.Run("duplicate batch number", func(t *testing.T) {
		uc, uow, f := newBatchFixture(t, now)
		input := validInput()
		input.BatchNumber = "CPB-2025-001"

		expectWithin(uow, f)
		f.coupons.EXPECT().CreateBatch(ctx, nil, gomock.Any()).
			Return(infra.WrapRepoErr("duplicate batch number", nil, infra.KindDuplicateKey))

		_, err := uc.Generate(ctx, input)
		require.ErrorIs(t, err, errs.ErrDuplicateBatch)
	})
}
