package repository

import (
	"context"
	"errors"
	"time"

	"trust-rewards/internal/domain/worker"
	"trust-rewards/internal/infra"
	"trust-rewards/internal/infra/db"
	"trust-rewards/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WorkerRepository struct{}

func NewWorkerRepository() shared.WorkerRepository {
	return &WorkerRepository{}
}

func (r *WorkerRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.WorkerSnapshot, error) {
	const q = `
		SELECT id, name, mobile, worker_type, status, wallet_balance, coupons_scanned, last_activity_at
		FROM workers
		WHERE id = $1`

	var (
		s      shared.WorkerSnapshot
		status string
	)
	err := dbtx.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Name, &s.Mobile, &s.WorkerType, &status,
		&s.WalletBalance, &s.CouponsScanned, &s.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("worker not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find worker by ID", err)
	}
	s.Status = worker.Status(status)
	return &s, nil
}

// Credit adds points and bumps the scan counter in one update. Reading the
// post-update balance and deriving the previous one from the same row keeps
// the pair consistent under concurrency without a separate SELECT.
func (r *WorkerRepository) Credit(ctx context.Context, dbtx db.DBTX, id uuid.UUID, points int64, scannedDelta int, at time.Time) (shared.BalanceChange, error) {
	const q = `
		UPDATE workers
		SET wallet_balance = wallet_balance + $2,
		    coupons_scanned = coupons_scanned + $3,
		    last_activity_at = $4,
		    updated_at = $4
		WHERE id = $1
		RETURNING wallet_balance`

	var newBalance int64
	err := dbtx.QueryRow(ctx, q, id, points, scannedDelta, at).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shared.BalanceChange{}, infra.WrapRepoErr("worker not found", err, infra.KindNotFound)
		}
		return shared.BalanceChange{}, infra.WrapRepoErr("failed to credit wallet", err)
	}
	return shared.BalanceChange{Previous: newBalance - points, New: newBalance}, nil
}

// DebitIfSufficient is the conditional update closing the read-then-write gap:
// the balance guard and the decrement happen in the same statement. No row
// back means either the worker does not exist or the balance was short; the
// caller disambiguates with a follow-up read, so this reports KindConflict.
func (r *WorkerRepository) DebitIfSufficient(ctx context.Context, dbtx db.DBTX, id uuid.UUID, points int64, at time.Time) (shared.BalanceChange, error) {
	const q = `
		UPDATE workers
		SET wallet_balance = wallet_balance - $2,
		    last_activity_at = $3,
		    updated_at = $3
		WHERE id = $1 AND wallet_balance >= $2
		RETURNING wallet_balance`

	var newBalance int64
	err := dbtx.QueryRow(ctx, q, id, points, at).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shared.BalanceChange{}, infra.WrapRepoErr("insufficient balance or worker missing", err, infra.KindConflict)
		}
		return shared.BalanceChange{}, infra.WrapRepoErr("failed to debit wallet", err)
	}
	return shared.BalanceChange{Previous: newBalance + points, New: newBalance}, nil
}
