package shared

import (
	"context"
	"time"

	"trust-rewards/internal/domain/ledger"
	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/domain/redemption"
	"trust-rewards/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Workers() WorkerRepository
	Coupons() CouponRepository
	Ledger() LedgerRepository
	Redemptions() RedemptionRepository
	Challenges() OTPRepository
	Sequences() SequenceRepository
	DB() db.DBTX
}

type WorkerRepository interface {
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*WorkerSnapshot, error)
	// Credit atomically adds points (and bumps the scan counter) and returns
	// the pre/post balance observed by that same update.
	Credit(ctx context.Context, db db.DBTX, id uuid.UUID, points int64, scannedDelta int, at time.Time) (BalanceChange, error)
	// DebitIfSufficient decrements only when the resulting balance stays >= 0,
	// in a single conditional update. A failed guard surfaces as KindConflict.
	DebitIfSufficient(ctx context.Context, db db.DBTX, id uuid.UUID, points int64, at time.Time) (BalanceChange, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, db db.DBTX, code string) (*CouponSnapshot, error)
	// Claim flips is_scanned false->true for the code; reports false when the
	// code was already claimed by anyone, including a concurrent scanner.
	Claim(ctx context.Context, db db.DBTX, code string, workerID uuid.UUID, at time.Time) (bool, error)
	RecordScan(ctx context.Context, db db.DBTX, rec ScanRecord) error
	CreateBatch(ctx context.Context, db db.DBTX, b BatchRecord) error
	CreateCode(ctx context.Context, db db.DBTX, c CodeRecord) error
}

type LedgerRepository interface {
	// Append is a pure insert; ledger entries are never updated or deleted.
	Append(ctx context.Context, db db.DBTX, entry *ledger.Entry) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, db db.DBTX, req *redemption.Request) error
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*RedemptionSnapshot, error)
	// TransitionStatus updates status guarded on the current value, so a
	// concurrent transition loses cleanly instead of double-applying.
	TransitionStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from, to redemption.Status, at time.Time) (bool, error)
	AppendHistory(ctx context.Context, db db.DBTX, redemptionID uuid.UUID, entry redemption.HistoryEntry) error
}

type OTPRepository interface {
	// DeleteUnused supersedes stale challenges before a new issue.
	DeleteUnused(ctx context.Context, db db.DBTX, workerID uuid.UUID, purpose string) error
	Create(ctx context.Context, db db.DBTX, challenge *otp.Challenge) error
	FindUnusedByID(ctx context.Context, db db.DBTX, challengeID, workerID uuid.UUID, purpose string) (*otp.Challenge, error)
	// MarkVerified is conditional on is_used still being false; reports false
	// when a concurrent verify won.
	MarkVerified(ctx context.Context, db db.DBTX, challengeID, token uuid.UUID, verifiedAt time.Time) (bool, error)
	FindByToken(ctx context.Context, db db.DBTX, workerID uuid.UUID, purpose string, token uuid.UUID) (*otp.Challenge, error)
}

type SequenceRepository interface {
	// Next is a single atomic fetch-and-increment, creating the counter at 1.
	Next(ctx context.Context, db db.DBTX, key string) (int64, error)
}

type GiftReadStore interface {
	FindByID(ctx context.Context, db db.DBTX, id uuid.UUID) (*GiftSnapshot, error)
}
