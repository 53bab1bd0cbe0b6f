package api

import (
	"errors"
	"net/http"

	reqdto "trust-rewards/internal/handler/dto/request"
	resdto "trust-rewards/internal/handler/dto/response"
	"trust-rewards/internal/handler/httperr"
	"trust-rewards/internal/handler/middleware"
	"trust-rewards/internal/pkg/errs"
	"trust-rewards/internal/usecase/commands"
	"trust-rewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct {
	walletQueries  queries.WalletQueries
	ledgerQueries  queries.LedgerQueries
	walletCommands commands.WalletCommands
}

func NewWalletHandler(
	walletQueries queries.WalletQueries,
	ledgerQueries queries.LedgerQueries,
	walletCommands commands.WalletCommands,
) *WalletHandler {
	return &WalletHandler{
		walletQueries:  walletQueries,
		ledgerQueries:  ledgerQueries,
		walletCommands: walletCommands,
	}
}

// @Summary Wallet overview
// @Description Balance, lifetime totals, and recent ledger activity
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.WalletOverview
// @Router /app/wallet [get]
func (h *WalletHandler) Overview(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	overview, err := h.walletQueries.Overview(c.Request.Context(), workerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// @Summary Wallet ledger
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param entry_type query string false "Filter by entry type"
// @Param from query string false "Filter from date (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Filter to date"
// @Success 200 {object} resdto.ListResponse[queries.LedgerEntryView]
// @Router /app/wallet/ledger [get]
func (h *WalletHandler) Ledger(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	filter := queries.LedgerFilter{
		EntryType: stringQuery(c, "entry_type"),
		From:      timeQuery(c, "from"),
		To:        timeQuery(c, "to"),
	}

	entries, pagination, err := h.walletQueries.Ledger(c.Request.Context(), workerID, filter, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(entries, pagination))
}

// @Summary Admin ledger
// @Description Cross-worker ledger with summary aggregates
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param worker_id query string false "Filter by worker"
// @Param entry_type query string false "Filter by entry type"
// @Success 200 {object} resdto.LedgerListResponse
// @Router /web/ledger [get]
func (h *WalletHandler) AdminLedger(c *gin.Context) {
	filter := queries.LedgerFilter{
		WorkerID:  uuidQuery(c, "worker_id"),
		EntryType: stringQuery(c, "entry_type"),
		From:      timeQuery(c, "from"),
		To:        timeQuery(c, "to"),
	}

	entries, pagination, err := h.ledgerQueries.List(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	summary, err := h.ledgerQueries.Summary(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LedgerListResponse{
		ListResponse: resdto.NewListResponse(entries, pagination),
		Summary:      summary,
	})
}

// @Summary Adjust worker wallet
// @Description Apply a signed admin correction to a worker's balance
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Param request body reqdto.AdjustWalletRequest true "Adjustment"
// @Success 200 {object} commands.AdjustWalletResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /web/workers/{id}/wallet/adjust [post]
func (h *WalletHandler) Adjust(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid worker ID", nil)
		return
	}

	var req reqdto.AdjustWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.walletCommands.Adjust(c.Request.Context(), commands.AdjustWalletInput{
		WorkerID: workerID,
		Amount:   req.Amount,
		Reason:   req.Reason,
		Actor:    commands.Actor{ID: adminID, Name: middleware.GetSubjectName(c)},
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid adjustment", nil)
		case errors.Is(err, errs.ErrWorkerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Worker not found", nil)
		case errors.Is(err, errs.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient wallet balance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
