package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"trust-rewards/internal/domain/coupon"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type GenerateBatchInput struct {
	// BatchNumber is minted from the sequence counter when empty.
	BatchNumber     string
	PointsPerCoupon int64
	TotalCoupons    int
	ValidFrom       time.Time
	ValidTo         time.Time
	CreatedBy       *uuid.UUID
}

type GenerateBatchResult struct {
	BatchID     uuid.UUID `json:"batch_id"`
	BatchNumber string    `json:"batch_number"`
	Codes       []string  `json:"codes"`
}

type CouponBatchCommands interface {
	Generate(ctx context.Context, input GenerateBatchInput) (*GenerateBatchResult, error)
}

type couponBatchUseCaseImpl struct {
	uow   shared.UnitOfWork
	codes *shared.CodeGenerator
	clock clock.Clock
}

func NewCouponBatchUseCase(uow shared.UnitOfWork, codes *shared.CodeGenerator, clock clock.Clock) CouponBatchCommands {
	return &couponBatchUseCaseImpl{uow: uow, codes: codes, clock: clock}
}

// Generate creates the batch and all its codes in one transaction: a batch is
// either fully issued or not issued at all.
func (u *couponBatchUseCaseImpl) Generate(ctx context.Context, input GenerateBatchInput) (*GenerateBatchResult, error) {
	now := u.clock.Now()

	var result *GenerateBatchResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		batchNumber := input.BatchNumber
		if batchNumber == "" {
			minted, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityCouponBatch, shared.PrefixCouponBatch, now)
			if err != nil {
				return err
			}
			batchNumber = minted
		}

		batch, err := coupon.NewBatch(batchNumber, input.PointsPerCoupon, input.TotalCoupons, input.ValidFrom, input.ValidTo, now)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := tx.Coupons().CreateBatch(ctx, tx.DB(), shared.BatchRecord{
			ID:              batch.ID(),
			BatchNumber:     batch.BatchNumber(),
			PointsPerCoupon: batch.PointsPerCoupon(),
			TotalCoupons:    batch.TotalCoupons(),
			ValidFrom:       batch.ValidFrom(),
			ValidTo:         batch.ValidTo(),
			CreatedBy:       input.CreatedBy,
		}); err != nil {
			return err
		}

		codes := make([]string, 0, batch.TotalCoupons())
		for i := 0; i < batch.TotalCoupons(); i++ {
			code := newCouponCode()
			if err := tx.Coupons().CreateCode(ctx, tx.DB(), shared.CodeRecord{
				ID:          uuid.New(),
				Code:        code,
				BatchID:     batch.ID(),
				PointsValue: batch.PointsPerCoupon(),
				ValidFrom:   batch.ValidFrom(),
				ValidTo:     batch.ValidTo(),
			}); err != nil {
				return err
			}
			codes = append(codes, code)
		}

		result = &GenerateBatchResult{
			BatchID:     batch.ID(),
			BatchNumber: batch.BatchNumber(),
			Codes:       codes,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			return nil, err
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrDuplicateBatch)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return result, nil
}

// newCouponCode derives a printable code from a fresh uuid. 16 hex chars keep
// codes short enough to print while leaving collisions to the unique index.
func newCouponCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:16])
}
