package commands

import (
	"context"
	"errors"
	"log/slog"

	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/config"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

// OTPSender delivers the one-time code to the worker's phone. SMS providers
// plug in here; the default implementation only logs.
type OTPSender interface {
	Send(ctx context.Context, mobile, code string) error
}

type LogOTPSender struct{}

func NewLogOTPSender() OTPSender {
	return &LogOTPSender{}
}

func (s *LogOTPSender) Send(_ context.Context, mobile, code string) error {
	slog.Info("otp issued", "mobile", otp.MaskMobile(mobile), "code_length", len(code))
	return nil
}

type IssueOTPResult struct {
	ChallengeID      uuid.UUID `json:"challenge_id"`
	MobileMasked     string    `json:"mobile_masked"`
	ExpiresInMinutes int       `json:"expires_in_minutes"`
}

type VerifyOTPResult struct {
	VerificationToken uuid.UUID `json:"verification_token"`
	ValidForMinutes   int       `json:"valid_for_minutes"`
}

type OTPCommands interface {
	Issue(ctx context.Context, workerID uuid.UUID, purpose string) (*IssueOTPResult, error)
	Verify(ctx context.Context, challengeID, workerID uuid.UUID, code string) (*VerifyOTPResult, error)
	// CheckToken reports whether token was minted by a verification for
	// (workerID, purpose) within the token window.
	CheckToken(ctx context.Context, workerID uuid.UUID, purpose string, token uuid.UUID) (bool, error)
}

type otpUseCaseImpl struct {
	uow        shared.UnitOfWork
	challenges shared.OTPRepository
	sender     OTPSender
	cfg        config.OTPConfig
	clock      clock.Clock
}

func NewOTPUseCase(
	uow shared.UnitOfWork,
	challenges shared.OTPRepository,
	sender OTPSender,
	cfg config.OTPConfig,
	clock clock.Clock,
) OTPCommands {
	return &otpUseCaseImpl{uow: uow, challenges: challenges, sender: sender, cfg: cfg, clock: clock}
}

func (u *otpUseCaseImpl) Issue(ctx context.Context, workerID uuid.UUID, purpose string) (*IssueOTPResult, error) {
	now := u.clock.Now()

	code, err := otp.GenerateCode()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate otp code")
	}

	var (
		challenge *otp.Challenge
		mobile    string
	)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		workerSnap, err := tx.Workers().FindByID(ctx, tx.DB(), workerID)
		if err != nil {
			return err
		}
		if err := workerSnap.ToDomain().EnsureActive(); err != nil {
			return errs.Mark(err, errs.ErrAccountInactive)
		}
		mobile = workerSnap.Mobile

		// A fresh issue supersedes any code still in flight.
		if err := tx.Challenges().DeleteUnused(ctx, tx.DB(), workerID, purpose); err != nil {
			return err
		}

		challenge, err = otp.NewChallenge(workerID, purpose, code, mobile, now, u.cfg.CodeTTL)
		if err != nil {
			return err
		}
		return tx.Challenges().Create(ctx, tx.DB(), challenge)
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAccountInactive):
			return nil, errs.ErrAccountInactive
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrWorkerNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := u.sender.Send(ctx, mobile, code); err != nil {
		// The challenge stays valid; delivery is retried by re-issuing.
		slog.Warn("otp delivery failed", "challenge_id", challenge.ID().String(), "error", err.Error())
	}

	return &IssueOTPResult{
		ChallengeID:      challenge.ID(),
		MobileMasked:     otp.MaskMobile(mobile),
		ExpiresInMinutes: int(u.cfg.CodeTTL.Minutes()),
	}, nil
}

func (u *otpUseCaseImpl) Verify(ctx context.Context, challengeID, workerID uuid.UUID, code string) (*VerifyOTPResult, error) {
	now := u.clock.Now()

	var token uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		challenge, err := tx.Challenges().FindUnusedByID(ctx, tx.DB(), challengeID, workerID, otp.PurposeGiftRedemption)
		if err != nil {
			return err
		}

		token, err = challenge.Verify(code, now)
		if err != nil {
			return err
		}

		marked, err := tx.Challenges().MarkVerified(ctx, tx.DB(), challengeID, token, now)
		if err != nil {
			return err
		}
		if !marked {
			return otp.ErrAlreadyUsed
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound), errors.Is(err, otp.ErrAlreadyUsed):
			return nil, errs.Mark(err, errs.ErrOTPNotFound)
		case errors.Is(err, otp.ErrExpired):
			return nil, errs.Mark(err, errs.ErrOTPExpired)
		case errors.Is(err, otp.ErrCodeMismatch):
			return nil, errs.Mark(err, errs.ErrInvalidOTP)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return &VerifyOTPResult{
		VerificationToken: token,
		ValidForMinutes:   int(u.cfg.TokenTTL.Minutes()),
	}, nil
}

func (u *otpUseCaseImpl) CheckToken(ctx context.Context, workerID uuid.UUID, purpose string, token uuid.UUID) (bool, error) {
	if token == uuid.Nil {
		return false, nil
	}

	var valid bool
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		challenge, err := u.challenges.FindByToken(ctx, dbtx, workerID, purpose, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		valid = challenge.TokenValidAt(u.clock.Now(), u.cfg.TokenTTL)
		return nil
	})
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return valid, nil
}
