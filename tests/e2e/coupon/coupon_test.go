//go:build e2e

package coupon_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"trust-rewards/internal/usecase/commands"
	"trust-rewards/tests/common/authtest"
	"trust-rewards/tests/common/dbtest"
	"trust-rewards/tests/common/httptest"
	"trust-rewards/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const scanURL = "/api/app/coupons/scan"

type CouponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

func (s *CouponSuite) TestScanCoupons() {
	s.Run("worker earns points and the ledger balances", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 0)
		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 50, 3)
		codes := []string{"AAAA000000000001", "AAAA000000000002", "AAAA000000000003"}
		for _, code := range codes {
			dbtest.CreateTestCoupon(t, s.DB, batchID, code, 50)
		}
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": codes}, token)

		var result commands.ScanResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, int64(150), result.TotalCredited)
		require.Equal(t, int64(150), result.WalletBalance)
		require.Len(t, result.Results, 3)
		for _, r := range result.Results {
			require.True(t, r.Success, "code %s should scan", r.Code)
			require.Equal(t, int64(50), r.Points)
		}

		require.Equal(t, int64(150), dbtest.WorkerBalance(t, s.DB, workerID))
		require.Equal(t, int64(150), dbtest.LedgerSum(t, s.DB, workerID))
	})

	s.Run("rejected codes do not roll back accepted ones", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 0)
		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 50, 1)
		dbtest.CreateTestCoupon(t, s.DB, batchID, "AAAA000000000001", 50)
		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": []string{"AAAA000000000001", "DOESNOTEXIST0001"}}, token)

		var result commands.ScanResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, int64(50), result.TotalCredited)
		require.Len(t, result.Results, 2)
		require.True(t, result.Results[0].Success)
		require.False(t, result.Results[1].Success)
		require.Equal(t, commands.ScanReasonNotFound, result.Results[1].Reason)

		require.Equal(t, int64(50), dbtest.WorkerBalance(t, s.DB, workerID))
	})

	s.Run("a code scans exactly once", func() {
		t := s.T()

		workerID := dbtest.CreateTestWorker(t, s.DB, "Ramesh Kumar", "9876543210", 0)
		otherID := dbtest.CreateTestWorker(t, s.DB, "Suresh Patel", "9876500000", 0)
		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 50, 1)
		dbtest.CreateTestCoupon(t, s.DB, batchID, "AAAA000000000001", 50)

		token := authtest.WorkerToken(t, s.Config.JWT, workerID, "Ramesh Kumar")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": []string{"AAAA000000000001"}}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		// Another worker tries the burnt code.
		otherToken := authtest.WorkerToken(t, s.Config.JWT, otherID, "Suresh Patel")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": []string{"AAAA000000000001"}}, otherToken)

		var result commands.ScanResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.False(t, result.Results[0].Success)
		require.Equal(t, commands.ScanReasonAlreadyScanned, result.Results[0].Reason)
		require.Equal(t, int64(0), dbtest.WorkerBalance(t, s.DB, otherID))
	})

	s.Run("concurrent scans of one code credit exactly once", func() {
		t := s.T()

		const workers = 8

		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 50, 1)
		dbtest.CreateTestCoupon(t, s.DB, batchID, "AAAA000000000001", 50)

		tokens := make([]string, workers)
		for i := range workers {
			id := dbtest.CreateTestWorker(t, s.DB, fmt.Sprintf("Worker %d", i), fmt.Sprintf("98765432%02d", i), 0)
			tokens[i] = authtest.WorkerToken(t, s.Config.JWT, id, fmt.Sprintf("Worker %d", i))
		}

		var wg sync.WaitGroup
		successes := make(chan bool, workers)
		for i := range workers {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
					map[string]any{"codes": []string{"AAAA000000000001"}}, tokens[idx])
				var result commands.ScanResult
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
				successes <- result.Results[0].Success
			}(i)
		}
		wg.Wait()
		close(successes)

		won := 0
		for ok := range successes {
			if ok {
				won++
			}
		}
		require.Equal(t, 1, won, "exactly one scan may claim the code")

		var totalCredited int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT COALESCE(SUM(wallet_balance), 0) FROM workers").Scan(&totalCredited)
		require.NoError(t, err)
		require.Equal(t, int64(50), totalCredited)
	})

	s.Run("ledger codes stay unique under concurrent scans", func() {
		t := s.T()

		const workers = 6

		batchID := dbtest.CreateTestBatch(t, s.DB, "CPB-2025-001", 50, workers)
		type scan struct {
			token string
			code  string
		}
		scans := make([]scan, workers)
		for i := range workers {
			code := fmt.Sprintf("BBBB0000000000%02d", i)
			dbtest.CreateTestCoupon(t, s.DB, batchID, code, 50)
			id := dbtest.CreateTestWorker(t, s.DB, fmt.Sprintf("Worker %d", i), fmt.Sprintf("98765432%02d", i), 0)
			scans[i] = scan{token: authtest.WorkerToken(t, s.Config.JWT, id, fmt.Sprintf("Worker %d", i)), code: code}
		}

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(sc scan) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
					map[string]any{"codes": []string{sc.code}}, sc.token)
				var result commands.ScanResult
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
				require.True(t, result.Results[0].Success)
			}(scans[i])
		}
		wg.Wait()

		var total, distinct int64
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*), COUNT(DISTINCT code) FROM ledger_entries").Scan(&total, &distinct)
		require.NoError(t, err)
		require.Equal(t, int64(workers), total)
		require.Equal(t, total, distinct, "ledger codes must never collide")
	})

	s.Run("unauthenticated scan is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": []string{"AAAA000000000001"}}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("admin tokens cannot use the worker surface", func() {
		t := s.T()

		adminID := dbtest.CreateTestWorker(t, s.DB, "Admin", "9999999999", 0)
		token := authtest.AdminToken(t, s.Config.JWT, adminID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, scanURL,
			map[string]any{"codes": []string{"AAAA000000000001"}}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
