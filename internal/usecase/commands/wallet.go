package commands

import (
	"context"
	"errors"
	"fmt"

	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdjustWalletInput struct {
	WorkerID uuid.UUID
	// Amount is signed: positive credits, negative debits.
	Amount int64
	Reason string
	Actor  Actor
}

type AdjustWalletResult struct {
	LedgerCode    string `json:"ledger_code"`
	WalletBalance int64  `json:"wallet_balance"`
}

type WalletCommands interface {
	Adjust(ctx context.Context, input AdjustWalletInput) (*AdjustWalletResult, error)
}

type walletUseCaseImpl struct {
	uow   shared.UnitOfWork
	codes *shared.CodeGenerator
	clock clock.Clock
}

func NewWalletUseCase(uow shared.UnitOfWork, codes *shared.CodeGenerator, clock clock.Clock) WalletCommands {
	return &walletUseCaseImpl{uow: uow, codes: codes, clock: clock}
}

// Adjust applies a signed admin correction. Debits go through the same
// conditional guard as redemptions, so an adjustment can never take the
// balance below zero.
func (u *walletUseCaseImpl) Adjust(ctx context.Context, input AdjustWalletInput) (*AdjustWalletResult, error) {
	if input.Amount == 0 || input.Reason == "" {
		return nil, errs.ErrValidation
	}

	now := u.clock.Now()

	var result *AdjustWalletResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Workers().FindByID(ctx, tx.DB(), input.WorkerID); err != nil {
			return err
		}

		var (
			change shared.BalanceChange
			err    error
		)
		if input.Amount > 0 {
			change, err = tx.Workers().Credit(ctx, tx.DB(), input.WorkerID, input.Amount, 0, now)
		} else {
			change, err = tx.Workers().DebitIfSufficient(ctx, tx.DB(), input.WorkerID, -input.Amount, now)
			if err != nil && infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInsufficientBalance)
			}
		}
		if err != nil {
			return err
		}

		ledgerCode, err := u.codes.NextCodeAt(ctx, tx.DB(), shared.EntityLedger, shared.PrefixLedger, now)
		if err != nil {
			return err
		}
		entry, err := ledger.NewEntry(
			ledgerCode, input.WorkerID, ledger.TypeAdminAdjustment,
			input.Amount, change.Previous, change.New,
			fmt.Sprintf("Admin adjustment: %s", input.Reason),
			"admin_adjustment", "", actorIDPtr(input.Actor), now,
		)
		if err != nil {
			return err
		}
		if err := tx.Ledger().Append(ctx, tx.DB(), entry); err != nil {
			return err
		}

		result = &AdjustWalletResult{LedgerCode: ledgerCode, WalletBalance: change.New}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInsufficientBalance):
			return nil, err
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrWorkerNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return result, nil
}
