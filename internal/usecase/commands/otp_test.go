//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/domain/worker"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/pkg/clock"
	"trust-rewards/internal/pkg/config"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/tests/common/builder"
	commandsmock "trust-rewards/tests/mock/commands"
	sharedmock "trust-rewards/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOTPCommands_Issue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := config.OTPConfig{CodeTTL: 5 * time.Minute, TokenTTL: 10 * time.Minute}

	t.Run("issues a challenge and sends the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		f := newTxFixture(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))

		workerB := builder.NewWorkerBuilder()

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)
		f.challenges.EXPECT().DeleteUnused(ctx, nil, workerB.ID, otp.PurposeGiftRedemption).Return(nil)
		f.challenges.EXPECT().Create(ctx, nil, gomock.Cond(func(c *otp.Challenge) bool {
			return c.WorkerID() == workerB.ID &&
				c.Purpose() == otp.PurposeGiftRedemption &&
				c.ExpiresAt().Equal(now.Add(5*time.Minute))
		})).Return(nil)
		sender.EXPECT().Send(ctx, workerB.Mobile, gomock.Len(6)).Return(nil)

		result, err := uc.Issue(ctx, workerB.ID, otp.PurposeGiftRedemption)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ChallengeID)
		assert.Equal(t, "******3210", result.MobileMasked)
		assert.Equal(t, 5, result.ExpiresInMinutes)
	})

	t.Run("delivery failure does not fail the issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		f := newTxFixture(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))

		workerB := builder.NewWorkerBuilder()

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)
		f.challenges.EXPECT().DeleteUnused(ctx, nil, workerB.ID, otp.PurposeGiftRedemption).Return(nil)
		f.challenges.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil)
		sender.EXPECT().Send(ctx, workerB.Mobile, gomock.Any()).Return(errors.New("sms gateway down"))

		result, err := uc.Issue(ctx, workerB.ID, otp.PurposeGiftRedemption)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ChallengeID)
	})

	t.Run("inactive worker cannot request a code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		f := newTxFixture(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))

		workerB := builder.NewWorkerBuilder().With(func(b *builder.WorkerBuilder) {
			b.Status = worker.StatusInactive
		})

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, workerB.ID).Return(workerB.BuildSnapshot(), nil)

		_, err := uc.Issue(ctx, workerB.ID, otp.PurposeGiftRedemption)
		require.ErrorIs(t, err, errs.ErrAccountInactive)
	})

	t.Run("unknown worker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		f := newTxFixture(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))

		expectWithin(uow, f)
		f.workers.EXPECT().FindByID(ctx, nil, gomock.Any()).
			Return(nil, infra.WrapRepoErr("worker not found", nil, infra.KindNotFound))

		_, err := uc.Issue(ctx, uuid.New(), otp.PurposeGiftRedemption)
		require.ErrorIs(t, err, errs.ErrWorkerNotFound)
	})
}

func TestOTPCommands_Verify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := config.OTPConfig{CodeTTL: 5 * time.Minute, TokenTTL: 10 * time.Minute}

	newVerifyFixture := func(t *testing.T, issuedAt time.Time) (commands.OTPCommands, *txFixture, *otp.Challenge) {
		t.Helper()
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		f := newTxFixture(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))

		challenge, err := builder.NewChallengeBuilder().With(func(b *builder.ChallengeBuilder) {
			b.IssuedAt = issuedAt
		}).BuildDomain()
		require.NoError(t, err)

		expectWithin(uow, f)
		return uc, f, challenge
	}

	t.Run("correct code returns a verification token", func(t *testing.T) {
		uc, f, challenge := newVerifyFixture(t, now.Add(-time.Minute))
		challengeID := challenge.ID()
		workerID := challenge.WorkerID()

		f.challenges.EXPECT().FindUnusedByID(ctx, nil, challengeID, workerID, otp.PurposeGiftRedemption).
			Return(challenge, nil)
		f.challenges.EXPECT().MarkVerified(ctx, nil, challengeID, gomock.Any(), now).Return(true, nil)

		result, err := uc.Verify(ctx, challengeID, workerID, "123456")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.VerificationToken)
		assert.Equal(t, 10, result.ValidForMinutes)
	})

	t.Run("wrong code", func(t *testing.T) {
		uc, f, challenge := newVerifyFixture(t, now.Add(-time.Minute))

		f.challenges.EXPECT().FindUnusedByID(ctx, nil, challenge.ID(), challenge.WorkerID(), otp.PurposeGiftRedemption).
			Return(challenge, nil)

		_, err := uc.Verify(ctx, challenge.ID(), challenge.WorkerID(), "000000")
		require.ErrorIs(t, err, errs.ErrInvalidOTP)
	})

	t.Run("expired code", func(t *testing.T) {
		uc, f, challenge := newVerifyFixture(t, now.Add(-6*time.Minute))

		f.challenges.EXPECT().FindUnusedByID(ctx, nil, challenge.ID(), challenge.WorkerID(), otp.PurposeGiftRedemption).
			Return(challenge, nil)

		_, err := uc.Verify(ctx, challenge.ID(), challenge.WorkerID(), "123456")
		require.ErrorIs(t, err, errs.ErrOTPExpired)
	})

	t.Run("challenge not found or already used", func(t *testing.T) {
		uc, f, challenge := newVerifyFixture(t, now.Add(-time.Minute))

		f.challenges.EXPECT().FindUnusedByID(ctx, nil, challenge.ID(), challenge.WorkerID(), otp.PurposeGiftRedemption).
			Return(nil, infra.WrapRepoErr("challenge not found", nil, infra.KindNotFound))

		_, err := uc.Verify(ctx, challenge.ID(), challenge.WorkerID(), "123456")
		require.ErrorIs(t, err, errs.ErrOTPNotFound)
	})

	t.Run("concurrent verify losing the conditional update", func(t *testing.T) {
		uc, f, challenge := newVerifyFixture(t, now.Add(-time.Minute))

		f.challenges.EXPECT().FindUnusedByID(ctx, nil, challenge.ID(), challenge.WorkerID(), otp.PurposeGiftRedemption).
			Return(challenge, nil)
		f.challenges.EXPECT().MarkVerified(ctx, nil, challenge.ID(), gomock.Any(), now).Return(false, nil)

		_, err := uc.Verify(ctx, challenge.ID(), challenge.WorkerID(), "123456")
		require.ErrorIs(t, err, errs.ErrOTPNotFound)
	})
}

func TestOTPCommands_CheckToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := config.OTPConfig{CodeTTL: 5 * time.Minute, TokenTTL: 10 * time.Minute}
	workerID := uuid.New()

	newCheckFixture := func(t *testing.T) (commands.OTPCommands, *sharedmock.MockUnitOfWork, *sharedmock.MockOTPRepository) {
		t.Helper()
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		challenges := sharedmock.NewMockOTPRepository(ctrl)
		sender := commandsmock.NewMockOTPSender(ctrl)
		uc := commands.NewOTPUseCase(uow, challenges, sender, cfg, clock.NewMockClock(now))
		return uc, uow, challenges
	}

	verifiedChallenge := func(t *testing.T, verifiedAt time.Time) (*otp.Challenge, uuid.UUID) {
		t.Helper()
		c, err := builder.NewChallengeBuilder().With(func(b *builder.ChallengeBuilder) {
			b.WorkerID = workerID
			b.IssuedAt = verifiedAt.Add(-time.Minute)
		}).BuildDomain()
		require.NoError(t, err)
		token, err := c.Verify("123456", verifiedAt)
		require.NoError(t, err)
		return c, token
	}

	t.Run("nil token is invalid without a lookup", func(t *testing.T) {
		uc, _, _ := newCheckFixture(t)

		valid, err := uc.CheckToken(ctx, workerID, otp.PurposeGiftRedemption, uuid.Nil)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("fresh token is valid", func(t *testing.T) {
		uc, uow, challenges := newCheckFixture(t)
		challenge, token := verifiedChallenge(t, now.Add(-5*time.Minute))

		expectWithDB(uow)
		challenges.EXPECT().FindByToken(ctx, nil, workerID, otp.PurposeGiftRedemption, token).
			Return(challenge, nil)

		valid, err := uc.CheckToken(ctx, workerID, otp.PurposeGiftRedemption, token)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("stale token is invalid", func(t *testing.T) {
		uc, uow, challenges := newCheckFixture(t)
		challenge, token := verifiedChallenge(t, now.Add(-11*time.Minute))

		expectWithDB(uow)
		challenges.EXPECT().FindByToken(ctx, nil, workerID, otp.PurposeGiftRedemption, token).
			Return(challenge, nil)

		valid, err := uc.CheckToken(ctx, workerID, otp.PurposeGiftRedemption, token)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		uc, uow, challenges := newCheckFixture(t)

		expectWithDB(uow)
		challenges.EXPECT().FindByToken(ctx, nil, workerID, otp.PurposeGiftRedemption, gomock.Any()).
			Return(nil, infra.WrapRepoErr("challenge not found", nil, infra.KindNotFound))

		valid, err := uc.CheckToken(ctx, workerID, otp.PurposeGiftRedemption, uuid.New())
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
