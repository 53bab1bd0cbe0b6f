//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trust-rewards/internal/domain/otp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestWorker(t *testing.T, db DBLike, name, mobile string, balance int64) uuid.UUID {
	t.Helper()

	workerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO workers (id, name, mobile, worker_type, status, wallet_balance)
		 VALUES ($1, $2, $3, 'carpenter', 'Active', $4)`,
		workerID, name, mobile, balance)
	require.NoError(t, err)

	return workerID
}

func SetWorkerStatus(t *testing.T, db DBLike, workerID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE workers SET status = $2 WHERE id = $1", workerID, status)
	require.NoError(t, err)
}

func CreateTestGift(t *testing.T, db DBLike, name string, pointsRequired int64) uuid.UUID {
	t.Helper()

	giftID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO gift_catalog (id, name, category, points_required, status)
		 VALUES ($1, $2, 'utility', $3, 'active')`,
		giftID, name, pointsRequired)
	require.NoError(t, err)

	return giftID
}

func CreateTestBatch(t *testing.T, db DBLike, batchNumber string, pointsPerCoupon int64, totalCoupons int) uuid.UUID {
	t.Helper()

	batchID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupon_batches (id, batch_number, points_per_coupon, total_coupons, valid_from, valid_to, status)
		 VALUES ($1, $2, $3, $4, CURRENT_DATE - 1, CURRENT_DATE + 30, 'active')`,
		batchID, batchNumber, pointsPerCoupon, totalCoupons)
	require.NoError(t, err)

	return batchID
}

func CreateTestCoupon(t *testing.T, db DBLike, batchID uuid.UUID, code string, pointsValue int64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupon_codes (id, code, batch_id, points_value, status, valid_from, valid_to)
		 VALUES ($1, $2, $3, $4, 'active', CURRENT_DATE - 1, CURRENT_DATE + 30)`,
		couponID, code, batchID, pointsValue)
	require.NoError(t, err)

	return couponID
}

// CreateTestChallenge inserts an unverified OTP challenge whose plain code is
// known to the caller, so e2e flows can drive the verify endpoint.
func CreateTestChallenge(t *testing.T, db DBLike, workerID uuid.UUID, plainCode, mobile string, ttl time.Duration) uuid.UUID {
	t.Helper()

	challenge, err := otp.NewChallenge(workerID, otp.PurposeGiftRedemption, plainCode, mobile, time.Now(), ttl)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		`INSERT INTO otp_challenges (id, worker_id, purpose, code_hash, mobile, expires_at, is_used)
		 VALUES ($1, $2, $3, $4, $5, $6, false)`,
		challenge.ID(), workerID, challenge.Purpose(), challenge.CodeHash(), mobile, challenge.ExpiresAt())
	require.NoError(t, err)

	return challenge.ID()
}

// CreateVerifiedToken inserts an already verified challenge and returns its
// verification token, skipping the send/verify round trip.
func CreateVerifiedToken(t *testing.T, db DBLike, workerID uuid.UUID) uuid.UUID {
	t.Helper()

	token := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO otp_challenges (id, worker_id, purpose, code_hash, mobile, expires_at, is_used, verification_token, verified_at)
		 VALUES ($1, $2, $3, 'unused', '9876543210', now() + interval '5 minutes', true, $4, now())`,
		uuid.New(), workerID, otp.PurposeGiftRedemption, token)
	require.NoError(t, err)

	return token
}

func CreateTestRedemption(t *testing.T, db DBLike, code string, workerID, giftID uuid.UUID, pointsUsed int64, status string) uuid.UUID {
	t.Helper()

	redemptionID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO redemption_requests (id, code, worker_id, gift_id, points_used, status)
		 VALUES ($1, $2, $3, $4, $5, $6::redemption_status)`,
		redemptionID, code, workerID, giftID, pointsUsed, status)
	require.NoError(t, err)

	return redemptionID
}

func WorkerBalance(t *testing.T, db DBLike, workerID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT wallet_balance FROM workers WHERE id = $1", workerID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// LedgerSum returns the signed sum of a worker's ledger entries. A consistent
// store keeps this equal to the wallet balance minus the seeded opening
// balance.
func LedgerSum(t *testing.T, db DBLike, workerID uuid.UUID) int64 {
	t.Helper()

	var sum int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE worker_id = $1", workerID).Scan(&sum)
	require.NoError(t, err)
	return sum
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO gift_catalog (id, name, category, points_required, status) VALUES
		    (gen_random_uuid(), 'Steel Water Bottle', 'utility', 300, 'active'),
		    (gen_random_uuid(), 'Tool Kit', 'tools', 800, 'active')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
