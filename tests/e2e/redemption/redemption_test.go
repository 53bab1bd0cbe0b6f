//go:build e2e

package redemption_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"trust-rewards/internal/usecase/commands"
	"trust-rewards/tests/common/authtest"
	"trust-rewards/tests/common/dbtest"
	"trust-rewards/tests/common/httptest"
	"trust-rewards/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	verifyURL     = "/api/app/redemptions/otp/verify"
	redeemURL     = "/api/app/redemptions"
	statusURLBase = "/api/web/redemptions/"
	cancelURLBase = "/api/app/redemptions/"
)

type RedemptionSuite struct {
	e2e.SharedSuite
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) cancellationEntries(workerID uuid.UUID) int64 {
	var n int64
	err := s.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ledger_entries WHERE worker_id = $1 AND entry_type = 'REDEMPTION_CANCELLATION'",
		workerID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

// =============================================================================
// TestRedeemFlow - OTP verification and gift redemption
// =============================================================================

func (s *RedemptionSuite) TestRedeemFlow() {
	s.Run("verified OTP unlocks a redemption that debits the wallet", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 500)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		challengeID := dbtest.CreateTestChallenge(t, s.DB, workerID, "123456", "9876543210", 5*time.Minute)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			map[string]any{"challenge_id": challengeID.String(), "code": "123456"}, token)

		var verified commands.VerifyOTPResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &verified)
		require.NotEqual(t, uuid.Nil, verified.VerificationToken)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{
			"gift_id":            giftID.String(),
			"verification_token": verified.VerificationToken.String(),
		}, token)

		var result commands.RedeemResult
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &result)

		expected := &commands.RedeemResult{
			GiftName:      "Pressure Cooker",
			PointsUsed:    300,
			WalletBalance: 200,
			Status:        "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(commands.RedeemResult{}, "RedemptionID", "Code"),
		}
		if diff := cmp.Diff(expected, &result, opts...); diff != "" {
			t.Errorf("Redeem response mismatch (-want +got):\n%s", diff)
		}
		require.NotEqual(t, uuid.Nil, result.RedemptionID)
		require.Regexp(t, `^RED-\d{4}-\d{3,}$`, result.Code)

		require.Equal(t, int64(200), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(-300), dbtest.LedgerSum(t, s.DB, workerID))
	})

	s.Run("wrong OTP code leaves the challenge usable", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 500)
		challengeID := dbtest.CreateTestChallenge(t, s.DB, workerID, "123456", "9876543210", 5*time.Minute)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			map[string]any{"challenge_id": challengeID.String(), "code": "654321"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid OTP code")

		// The right code still works after a failed guess.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			map[string]any{"challenge_id": challengeID.String(), "code": "123456"}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("redeeming without a verification token is forbidden", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 500)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{
			"gift_id":            giftID.String(),
			"verification_token": uuid.New().String(),
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "OTP verification required")
	})

	s.Run("insufficient balance leaves wallet and ledger untouched", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 100)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		verification := dbtest.CreateVerifiedToken(t, s.DB, workerID)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{
			"gift_id":            giftID.String(),
			"verification_token": verification.String(),
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Insufficient wallet balance")

		require.Equal(t, int64(100), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(0), dbtest.LedgerSum(t, s.DB, workerID))
	})
}

// =============================================================================
// TestCancellation - worker cancel and the exactly-once refund
// =============================================================================

func (s *RedemptionSuite) TestCancellation() {
	s.Run("worker cancel restores the points", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", workerID, giftID, 300, "pending")
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			cancelURLBase+redemptionID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(1), s.cancellationEntries(workerID))
	})

	s.Run("cancelling twice refunds once", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", workerID, giftID, 300, "pending")
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")
		url := cancelURLBase + redemptionID.String() + "/cancel"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Only pending redemptions can be cancelled")

		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(1), s.cancellationEntries(workerID))
	})

	s.Run("concurrent cancels refund exactly once", func() {
		t := s.T()

		const attempts = 6

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", workerID, giftID, 300, "pending")
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")
		url := cancelURLBase + redemptionID.String() + "/cancel"

		var wg sync.WaitGroup
		statuses := make(chan int, attempts)
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, token)
				statuses <- w.Code
			}()
		}
		wg.Wait()
		close(statuses)

		succeeded := 0
		for code := range statuses {
			if code == http.StatusNoContent {
				succeeded++
			}
		}
		require.Equal(t, 1, succeeded, "exactly one cancel may win")

		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(1), s.cancellationEntries(workerID))
	})

	s.Run("a worker cannot cancel someone else's request", func() {
		t := s.T()

		ownerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		strangerID := dbtest.CreateTestWorker(t, s.DB, "Suresh Patel", "9876500000", 0)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", ownerID, giftID, 300, "pending")
		token := authtest.WorkerToken(t, s.Config.JWT, strangerID, "Suresh Patel")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			cancelURLBase+redemptionID.String()+"/cancel", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Redemption belongs to another worker")

		require.Equal(t, int64(200), dbtest.WorkerBalance(t, s.DB, ownerID))
	})
}

// =============================================================================
// TestAdminLifecycle - admin status transitions over the web surface
// =============================================================================

func (s *RedemptionSuite) TestAdminLifecycle() {
	s.Run("approve then redeem walks the full lifecycle", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", workerID, giftID, 300, "pending")
		adminToken := authtest.AdminToken(t, s.Config.JWT, uuid.New())
		url := statusURLBase + redemptionID.String() + "/status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			map[string]any{"status": "approved", "comment": "Stock confirmed"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			map[string]any{"status": "redeemed"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		// Terminal: no further transitions, no refund ever written.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url,
			map[string]any{"status": "cancelled"}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid status transition")

		require.Equal(t, int64(200), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(0), s.cancellationEntries(workerID))
	})

	s.Run("admin cancellation of an approved request refunds the worker", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		giftID := dbtest.CreateTestGift(t, s.DB, "Pressure Cooker", 300)
		redemptionID := dbtest.CreateTestRedemption(t, s.DB, "RED-2025-001", workerID, giftID, 300, "approved")
		adminToken := authtest.AdminToken(t, s.Config.JWT, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			statusURLBase+redemptionID.String()+"/status",
			map[string]any{"status": "cancelled", "comment": "Out of stock"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(1), s.cancellationEntries(workerID))
		require.Equal(t, int64(300), dbtest.LedgerSum(t, s.DB, workerID))
	})

	s.Run("worker tokens cannot reach the web surface", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 200)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			statusURLBase+uuid.New().String()+"/status",
			map[string]any{"status": "approved"}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestFullLifecycle - scan, redeem, cancel against one wallet
// =============================================================================

func (s *RedemptionSuite) TestFullLifecycle() {
	s.Run("wallet and ledger stay consistent across the whole journey", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 0)
		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 500, 1)
		dbtest.CreateTestCoupon(t, s.DB, batchID, "AAAA000000000001", 500)
		giftID := dbtest.CreateTestGift(t, s.DB, "Mixer Grinder", 500)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		// 0 -> 500: scan the coupon.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/app/coupons/scan",
			map[string]any{"codes": []string{"AAAA000000000001"}}, token)
		var scanned commands.ScanResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &scanned)
		require.Equal(t, int64(500), scanned.WalletBalance)
		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))

		// 500 -> 0: redeem the gift.
		verification := dbtest.CreateVerifiedToken(t, s.DB, workerID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, redeemURL, map[string]any{
			"gift_id":            giftID.String(),
			"verification_token": verification.String(),
		}, token)
		var redeemed commands.RedeemResult
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &redeemed)
		require.Equal(t, int64(0), redeemed.WalletBalance)
		require.Equal(t, int64(0), dbtest.WorkerBalance(t, s.DB, workerID))

		// 0 -> 500: cancel the redemption.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			cancelURLBase+redeemed.RedemptionID.String()+"/cancel", nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int64(500), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(500), dbtest.LedgerSum(t, s.DB, workerID))
		require.Equal(t, int64(1), s.cancellationEntries(workerID))
	})
}
