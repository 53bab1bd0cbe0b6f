package commands

import (
	"context"
	"errors"
	"fmt"

	"trust-rewards/internal/domain/coupon"
	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

// Per-code outcome reasons returned to the scanning client.
const (
	ScanReasonNotFound         = "CODE_NOT_FOUND"
	ScanReasonAlreadyScanned   = "ALREADY_SCANNED"
	ScanReasonInvalidOrExpired = "INVALID_OR_EXPIRED"
)

type CodeScanResult struct {
	Code    string `json:"code"`
	Success bool   `json:"success"`
	Points  int64  `json:"points,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type ScanResult struct {
	Results       []CodeScanResult `json:"results"`
	TotalCredited int64            `json:"total_credited"`
	WalletBalance int64            `json:"wallet_balance"`
}

type CouponCommands interface {
	Scan(ctx context.Context, workerID uuid.UUID, codes []string) (*ScanResult, error)
}

type couponUseCaseImpl struct {
	uow     shared.UnitOfWork
	workers shared.WorkerRepository
	codes   *shared.CodeGenerator
	clock   clock.Clock
}

func NewCouponUseCase(
	uow shared.UnitOfWork,
	workers shared.WorkerRepository,
	codes *shared.CodeGenerator,
	clock clock.Clock,
) CouponCommands {
	return &couponUseCaseImpl{uow: uow, workers: workers, codes: codes, clock: clock}
}

// Scan credits one coupon per transaction: codes are independent, so a
// rejected or failing code never rolls back points already earned by the
// ones before it.
func (u *couponUseCaseImpl) Scan(ctx context.Context, workerID uuid.UUID, codes []string) (*ScanResult, error) {
	var workerSnap *shared.WorkerSnapshot
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		workerSnap, err = u.workers.FindByID(ctx, dbtx, workerID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrWorkerNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := workerSnap.ToDomain().EnsureActive(); err != nil {
		return nil, errs.ErrAccountInactive
	}

	result := &ScanResult{
		Results:       make([]CodeScanResult, 0, len(codes)),
		WalletBalance: workerSnap.WalletBalance,
	}

	for _, code := range codes {
		outcome, err := u.scanOne(ctx, workerID, code)
		if err != nil {
			return nil, err
		}
		if outcome.Success {
			result.TotalCredited += outcome.Points
			result.WalletBalance = outcome.newBalance
		}
		result.Results = append(result.Results, outcome.CodeScanResult)
	}

	return result, nil
}

type scanOutcome struct {
	CodeScanResult
	newBalance int64
}

func (u *couponUseCaseImpl) scanOne(ctx context.Context, workerID uuid.UUID, code string) (scanOutcome, error) {
	now := u.clock.Now()
	outcome := scanOutcome{CodeScanResult: CodeScanResult{Code: code}}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().FindByCode(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				outcome.Reason = ScanReasonNotFound
				return nil
			}
			return err
		}

		if err := snap.ToDomain().ValidateScan(now); err != nil {
			switch {
			case errors.Is(err, coupon.ErrAlreadyScanned):
				outcome.Reason = ScanReasonAlreadyScanned
			default:
				outcome.Reason = ScanReasonInvalidOrExpired
			}
			return nil
		}

		claimed, err := tx.Coupons().Claim(ctx, tx.DB(), code, workerID, now)
		if err != nil {
			return err
		}
		if !claimed {
			// Lost the race to another scanner between read and claim.
			outcome.Reason = ScanReasonAlreadyScanned
			return nil
		}

		change, err := tx.Workers().Credit(ctx, tx.DB(), workerID, snap.PointsValue, 1, now)
		if err != nil {
			return err
		}

		ledgerCode, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityLedger, shared.PrefixLedger, now)
		if err != nil {
			return err
		}

		entry, err := ledger.NewEntry(
			ledgerCode, workerID, ledger.TypeCouponScan,
			snap.PointsValue, change.Previous, change.New,
			fmt.Sprintf("Coupon scan %s (batch %s)", snap.Code, snap.BatchNumber),
			"coupon", snap.ID.String(), nil, now,
		)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		if err := tx.Coupons().RecordScan(ctx, tx.DB(), shared.ScanRecord{
			CouponID:    snap.ID,
			Code:        snap.Code,
			BatchNumber: snap.BatchNumber,
			WorkerID:    workerID,
			Points:      snap.PointsValue,
			ScannedAt:   now,
		}); err != nil {
			return err
		}

		outcome.Success = true
		outcome.Points = snap.PointsValue
		outcome.newBalance = change.New
		return nil
	})
	if err != nil {
		return scanOutcome{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return outcome, nil
}
