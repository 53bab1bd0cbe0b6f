//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"trust-rewards/internal/handler/api"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/internal/usecase/queries"
	"trust-rewards/tests/common/httptest"
	"trust-rewards/tests/common/testutil"
	commandsmock "trust-rewards/tests/mock/commands"
	queriesmock "trust-rewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWallet  *queriesmock.MockWalletQueries
	mockLedger  *queriesmock.MockLedgerQueries
	mockAdjust  *commandsmock.MockWalletCommands
	handler     *api.WalletHandler
	subjectID   uuid.UUID
	subjectName string
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWallet = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.mockLedger = queriesmock.NewMockLedgerQueries(s.mockCtrl)
	s.mockAdjust = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockWallet, s.mockLedger, s.mockAdjust)
	s.subjectID = uuid.New()
	s.subjectName = "Admin"

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("subject_id", s.subjectID)
		c.Set("subject_name", s.subjectName)
		c.Next()
	}

	s.router.GET("/app/wallet", authMiddleware, s.handler.Overview)
	s.router.GET("/app/wallet/ledger", authMiddleware, s.handler.Ledger)
	s.router.GET("/web/ledger", authMiddleware, s.handler.AdminLedger)
	s.router.POST("/web/workers/:id/wallet/adjust", authMiddleware, s.handler.Adjust)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

// ================================================================================
// TestOverview
// ================================================================================

func (s *WalletHandlerTestSuite) TestOverview() {
	url := "/app/wallet"

	overview := &queries.WalletOverview{
		WorkerID:      s.subjectID,
		WorkerName:    "Ramesh Kumar",
		Balance:       500,
		TotalEarned:   1200,
		TotalRedeemed: 700,
	}

	s.Run("success: returns 200 OK with the overview", func() {
		s.mockWallet.EXPECT().Overview(gomock.Any(), s.subjectID).
			Return(overview, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.WalletOverview
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(500), response.Balance)
		s.Equal(int64(1200), response.TotalEarned)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockWallet.EXPECT().Overview(gomock.Any(), s.subjectID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestLedger
// ================================================================================

func (s *WalletHandlerTestSuite) TestLedger() {
	url := "/app/wallet/ledger"

	entries := []*queries.LedgerEntryView{
		{ID: uuid.New(), Code: "TXN-2025-001", Amount: 50},
		{ID: uuid.New(), Code: "TXN-2025-002", Amount: -300},
	}
	pagination := queries.NewPagination(queries.PageRequest{Page: 1, PerPage: 20}, 2)

	s.Run("success: returns the worker's own ledger", func() {
		s.mockWallet.EXPECT().
			Ledger(gomock.Any(), s.subjectID, queries.LedgerFilter{}, queries.PageRequest{Page: 1, PerPage: 20}).
			Return(entries, pagination, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		list, ok := response["data"].([]any)
		s.True(ok)
		s.Equal(len(entries), len(list))
	})

	s.Run("success: entry type filter is passed through", func() {
		entryType := "COUPON_SCAN"
		s.mockWallet.EXPECT().
			Ledger(gomock.Any(), s.subjectID, gomock.Cond(func(f queries.LedgerFilter) bool {
				return f.EntryType != nil && *f.EntryType == entryType
			}), gomock.Any()).
			Return(entries[:1], pagination, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?entry_type=COUPON_SCAN", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestAdjust
// ================================================================================

func (s *WalletHandlerTestSuite) TestAdjust() {
	workerID := uuid.New()
	url := "/web/workers/" + workerID.String() + "/wallet/adjust"

	reqBody := map[string]any{
		"amount": 250,
		"reason": "missed scan credit",
	}
	expectedResult := &commands.AdjustWalletResult{
		LedgerCode:    "TXN-2025-040",
		WalletBalance: 750,
	}

	s.Run("success: returns 200 OK with the new balance", func() {
		s.mockAdjust.EXPECT().Adjust(gomock.Any(), gomock.Cond(func(in commands.AdjustWalletInput) bool {
			return in.WorkerID == workerID &&
				in.Amount == 250 &&
				in.Reason == "missed scan credit" &&
				in.Actor.ID == s.subjectID && in.Actor.Name == s.subjectName
		})).Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response commands.AdjustWalletResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("TXN-2025-040", response.LedgerCode)
		s.Equal(int64(750), response.WalletBalance)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/web/workers/invalid-uuid/wallet/adjust"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid worker ID")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: amount (required)", mutate: testutil.Field("amount", nil)},
			{name: "zero amount", mutate: testutil.Field("amount", 0)},
			{name: "missing field: reason (required)", mutate: testutil.Field("reason", nil)},
			{name: "reason too short", mutate: testutil.Field("reason", "ab")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "worker not found",
				commandsError:  errs.ErrWorkerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Worker not found",
			},
			{
				name:           "insufficient balance",
				commandsError:  errs.ErrInsufficientBalance,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient wallet balance",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAdjust.EXPECT().Adjust(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
