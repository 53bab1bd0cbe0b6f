package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/domain/redemption"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/config"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemResult struct {
	RedemptionID  uuid.UUID `json:"redemption_id"`
	Code          string    `json:"code"`
	GiftName      string    `json:"gift_name"`
	PointsUsed    int64     `json:"points_used"`
	WalletBalance int64     `json:"wallet_balance"`
	Status        string    `json:"status"`
}

// Actor identifies who drives a status change, for the audit trail.
type Actor struct {
	ID   uuid.UUID
	Name string
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, workerID, giftID uuid.UUID, verificationToken uuid.UUID) (*RedeemResult, error)
	ChangeStatus(ctx context.Context, redemptionID uuid.UUID, newStatus redemption.Status, actor Actor, comment string) error
	Cancel(ctx context.Context, redemptionID, workerID uuid.UUID, workerName string) error
}

type redemptionUseCaseImpl struct {
	uow   shared.UnitOfWork
	gifts shared.GiftReadStore
	codes *shared.CodeGenerator
	cfg   config.OTPConfig
	clock clock.Clock
}

func NewRedemptionUseCase(
	uow shared.UnitOfWork,
	gifts shared.GiftReadStore,
	codes *shared.CodeGenerator,
	cfg config.OTPConfig,
	clock clock.Clock,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		uow:   uow,
		gifts: gifts,
		codes: codes,
		cfg:   cfg,
		clock: clock,
	}
}

// Redeem debits the wallet and creates the pending request in one
// transaction. The debit is a conditional update, so a concurrent redemption
// can never push the balance negative; whoever's update matches first wins.
func (u *redemptionUseCaseImpl) Redeem(ctx context.Context, workerID, giftID uuid.UUID, verificationToken uuid.UUID) (*RedeemResult, error) {
	now := u.clock.Now()

	var result *RedeemResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.requireVerifiedToken(ctx, tx, workerID, verificationToken, now); err != nil {
			return err
		}

		workerSnap, err := tx.Workers().FindByID(ctx, tx.DB(), workerID)
		if err != nil {
			return err
		}
		if err := workerSnap.ToDomain().EnsureActive(); err != nil {
			return errs.Mark(err, errs.ErrAccountInactive)
		}

		gift, err := u.gifts.FindByID(ctx, tx.DB(), giftID)
		if err != nil {
			return err
		}
		if !gift.IsActive() {
			return errs.ErrGiftNotFound
		}
		if gift.PointsRequired <= 0 {
			return errs.ErrValidation
		}

		change, err := tx.Workers().DebitIfSufficient(ctx, tx.DB(), workerID, gift.PointsRequired, now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInsufficientBalance)
			}
			return err
		}

		code, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityRedemption, shared.PrefixRedemption, now)
		if err != nil {
			return err
		}

		request, err := redemption.New(code, workerID, giftID, gift.PointsRequired, now)
		if err != nil {
			return err
		}
		if err := tx.Redemptions().Create(ctx, tx.DB(), request); err != nil {
			return err
		}

		if err := tx.Redemptions().AppendHistory(ctx, tx.DB(), request.ID(), redemption.HistoryEntry{
			Status:    redemption.StatusPending,
			ActorID:   &workerID,
			ActorName: workerSnap.Name,
			Comment:   "Redemption requested",
			ChangedAt: now,
		}); err != nil {
			return err
		}

		ledgerCode, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityLedger, shared.PrefixLedger, now)
		if err != nil {
			return err
		}
		entry, err := ledger.NewEntry(
			ledgerCode, workerID, ledger.TypeGiftRedemptionRequest,
			-gift.PointsRequired, change.Previous, change.New,
			fmt.Sprintf("Gift redemption %s (%s)", code, gift.Name),
			"redemption", request.ID().String(), nil, now,
		)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		result = &RedeemResult{
			RedemptionID:  request.ID(),
			Code:          code,
			GiftName:      gift.Name,
			PointsUsed:    gift.PointsRequired,
			WalletBalance: change.New,
			Status:        request.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, u.classifyRedeemErr(err)
	}
	return result, nil
}

func (u *redemptionUseCaseImpl) requireVerifiedToken(ctx context.Context, tx shared.Tx, workerID, token uuid.UUID, now time.Time) error {
	if token == uuid.Nil {
		return errs.ErrOTPVerificationRequired
	}

	challenge, err := tx.Challenges().FindByToken(ctx, tx.DB(), workerID, otp.PurposeGiftRedemption, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOTPVerificationRequired
		}
		return err
	}
	if !challenge.TokenValidAt(now, u.cfg.TokenTTL) {
		return errs.ErrOTPVerificationExpired
	}
	return nil
}

func (u *redemptionUseCaseImpl) classifyRedeemErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrOTPVerificationRequired),
		errors.Is(err, errs.ErrOTPVerificationExpired),
		errors.Is(err, errs.ErrAccountInactive),
		errors.Is(err, errs.ErrGiftNotFound),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrWorkerNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

// ChangeStatus applies one admin transition. On cancellation the same
// transaction restores the points and writes the compensating ledger entry;
// the status guard in TransitionStatus makes that refund exactly-once.
func (u *redemptionUseCaseImpl) ChangeStatus(ctx context.Context, redemptionID uuid.UUID, newStatus redemption.Status, actor Actor, comment string) error {
	now := u.clock.Now()

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Redemptions().FindByID(ctx, tx.DB(), redemptionID)
		if err != nil {
			return err
		}

		current, ok := redemption.ParseStatus(snap.Status)
		if !ok {
			return errs.ErrInvalidTransition
		}
		if err := redemption.ValidateTransition(current, newStatus); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		moved, err := tx.Redemptions().TransitionStatus(ctx, tx.DB(), redemptionID, current, newStatus, now)
		if err != nil {
			return err
		}
		if !moved {
			// Someone changed the row since our read; treat as invalid from
			// the caller's point of view.
			return errs.ErrInvalidTransition
		}

		if newStatus == redemption.StatusCancelled {
			change, err := tx.Workers().Credit(ctx, tx.DB(), snap.WorkerID, snap.PointsUsed, 0, now)
			if err != nil {
				return err
			}

			ledgerCode, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityLedger, shared.PrefixLedger, now)
			if err != nil {
				return err
			}
			entry, err := ledger.NewEntry(
				ledgerCode, snap.WorkerID, ledger.TypeRedemptionCancellation,
				snap.PointsUsed, change.Previous, change.New,
				fmt.Sprintf("Redemption %s cancelled, points restored", snap.Code),
				"redemption_cancellation", redemptionID.String(), actorIDPtr(actor), now,
			)
			if err != nil {
				return err
			}
			if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
				return err
			}
		}

		return tx.Redemptions().AppendHistory(ctx, tx.DB(), redemptionID, redemption.HistoryEntry{
			Status:    newStatus,
			ActorID:   actorIDPtr(actor),
			ActorName: actor.Name,
			Comment:   comment,
			ChangedAt: now,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTransition):
			return errs.ErrInvalidTransition
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrRedemptionNotFound)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// Cancel is the worker-facing cancellation: owner only, pending only.
func (u *redemptionUseCaseImpl) Cancel(ctx context.Context, redemptionID, workerID uuid.UUID, workerName string) error {
	now := u.clock.Now()

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Redemptions().FindByID(ctx, tx.DB(), redemptionID)
		if err != nil {
			return err
		}

		current, ok := redemption.ParseStatus(snap.Status)
		if !ok {
			return errs.ErrInvalidTransition
		}
		request := redemption.Reconstruct(
			snap.ID, snap.Code, snap.WorkerID, snap.GiftID,
			snap.PointsUsed, current, snap.RequestedAt,
		)
		if err := request.ValidateWorkerCancel(workerID); err != nil {
			switch {
			case errors.Is(err, redemption.ErrNotOwner):
				return errs.Mark(err, errs.ErrNotRequestOwner)
			default:
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
		}

		moved, err := tx.Redemptions().TransitionStatus(ctx, tx.DB(), redemptionID, redemption.StatusPending, redemption.StatusCancelled, now)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidTransition
		}

		change, err := tx.Workers().Credit(ctx, tx.DB(), workerID, snap.PointsUsed, 0, now)
		if err != nil {
			return err
		}

		ledgerCode, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityLedger, shared.PrefixLedger, now)
		if err != nil {
			return err
		}
		entry, err := ledger.NewEntry(
			ledgerCode, workerID, ledger.TypeRedemptionCancellation,
			snap.PointsUsed, change.Previous, change.New,
			fmt.Sprintf("Redemption %s cancelled by worker, points restored", snap.Code),
			"redemption_cancellation", redemptionID.String(), &workerID, now,
		)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		return tx.Redemptions().AppendHistory(ctx, tx.DB(), redemptionID, redemption.HistoryEntry{
			Status:    redemption.StatusCancelled,
			ActorID:   &workerID,
			ActorName: workerName,
			Comment:   "Cancelled by worker",
			ChangedAt: now,
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotRequestOwner), errors.Is(err, errs.ErrInvalidTransition):
			return err
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrRedemptionNotFound)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func actorIDPtr(actor Actor) *uuid.UUID {
	if actor.ID == uuid.Nil {
		return nil
	}
	id := actor.ID
	return &id
}
