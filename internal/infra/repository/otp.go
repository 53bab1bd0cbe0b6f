package repository

import (
	"context"
	"errors"
	"time"

	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OTPRepository struct{}

func NewOTPRepository() shared.OTPRepository {
	return &OTPRepository{}
}

func (r *OTPRepository) DeleteUnused(ctx context.Context, dbtx db.DBTX, workerID uuid.UUID, purpose string) error {
	const q = `
		DELETE FROM otp_challenges
		WHERE worker_id = $1 AND purpose = $2 AND is_used = false`

	if _, err := dbtx.Exec(ctx, q, workerID, purpose); err != nil {
		return infra.WrapRepoErr("failed to delete stale otp challenges", err)
	}
	return nil
}

func (r *OTPRepository) Create(ctx context.Context, dbtx db.DBTX, challenge *otp.Challenge) error {
	const q = `
		INSERT INTO otp_challenges (id, worker_id, purpose, code_hash, mobile, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := dbtx.Exec(ctx, q,
		challenge.ID(), challenge.WorkerID(), challenge.Purpose(),
		challenge.CodeHash(), challenge.Mobile(), challenge.ExpiresAt(),
	); err != nil {
		return infra.WrapRepoErr("failed to create otp challenge", err)
	}
	return nil
}

func (r *OTPRepository) FindUnusedByID(ctx context.Context, dbtx db.DBTX, challengeID, workerID uuid.UUID, purpose string) (*otp.Challenge, error) {
	const q = `
		SELECT id, worker_id, purpose, code_hash, mobile, expires_at, is_used, verification_token, verified_at
		FROM otp_challenges
		WHERE id = $1 AND worker_id = $2 AND purpose = $3 AND is_used = false`

	return r.scanChallenge(dbtx.QueryRow(ctx, q, challengeID, workerID, purpose))
}

// MarkVerified persists the outcome of Challenge.Verify, guarded on the row
// still being unused so concurrent verifications settle to a single winner.
func (r *OTPRepository) MarkVerified(ctx context.Context, dbtx db.DBTX, challengeID, token uuid.UUID, verifiedAt time.Time) (bool, error) {
	const q = `
		UPDATE otp_challenges
		SET is_used = true, verification_token = $2, verified_at = $3
		WHERE id = $1 AND is_used = false`

	tag, err := dbtx.Exec(ctx, q, challengeID, token, verifiedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark otp verified", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OTPRepository) FindByToken(ctx context.Context, dbtx db.DBTX, workerID uuid.UUID, purpose string, token uuid.UUID) (*otp.Challenge, error) {
	const q = `
		SELECT id, worker_id, purpose, code_hash, mobile, expires_at, is_used, verification_token, verified_at
		FROM otp_challenges
		WHERE worker_id = $1 AND purpose = $2 AND verification_token = $3 AND is_used = true`

	return r.scanChallenge(dbtx.QueryRow(ctx, q, workerID, purpose, token))
}

func (r *OTPRepository) scanChallenge(row pgx.Row) (*otp.Challenge, error) {
	var (
		id, workerID      uuid.UUID
		purpose, codeHash string
		mobile            string
		expiresAt         time.Time
		isUsed            bool
		verificationToken *uuid.UUID
		verifiedAt        *time.Time
	)
	err := row.Scan(&id, &workerID, &purpose, &codeHash, &mobile, &expiresAt, &isUsed, &verificationToken, &verifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("otp challenge not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find otp challenge", err)
	}
	return otp.Reconstruct(id, workerID, purpose, codeHash, mobile, expiresAt, isUsed, verificationToken, verifiedAt), nil
}
