package api

import (
	"errors"
	"net/http"

	"trust-rewards/internal/domain/otp"
	"trust-rewards/internal/domain/redemption"
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

type RedemptionHandler struct {
	otpCommands        commands.OTPCommands
	redemptionCommands commands.RedemptionCommands
	redemptionQueries  queries.RedemptionQueries
}

func NewRedemptionHandler(
	otpCommands commands.OTPCommands,
	redemptionCommands commands.RedemptionCommands,
	redemptionQueries queries.RedemptionQueries,
) *RedemptionHandler {
	return &RedemptionHandler{
		otpCommands:        otpCommands,
		redemptionCommands: redemptionCommands,
		redemptionQueries:  redemptionQueries,
	}
}

// @Summary Send redemption OTP
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.IssueOTPResult
// @Failure 403 {object} httperr.Response
// @Router /app/redemptions/otp/send [post]
func (h *RedemptionHandler) SendOTP(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	result, err := h.otpCommands.Issue(c.Request.Context(), workerID, otp.PurposeGiftRedemption)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWorkerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Worker not found", nil)
		case errors.Is(err, errs.ErrAccountInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is not active", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Verify redemption OTP
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyOTPRequest true "Challenge and code"
// @Success 200 {object} commands.VerifyOTPResult
// @Failure 400 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /app/redemptions/otp/verify [post]
func (h *RedemptionHandler) VerifyOTP(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.otpCommands.Verify(c.Request.Context(), req.ChallengeID, workerID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "OTP challenge not found", nil)
		case errors.Is(err, errs.ErrOTPExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "OTP has expired", nil)
		case errors.Is(err, errs.ErrInvalidOTP):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid OTP code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Redeem gift
// @Description Debit the wallet and create a pending redemption request
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Gift and verification token"
// @Success 201 {object} commands.RedeemResult
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /app/redemptions [post]
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.redemptionCommands.Redeem(c.Request.Context(), workerID, req.GiftID, req.VerificationToken)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPVerificationRequired):
			httperr.AbortWithError(c, http.StatusForbidden, err, "OTP verification required", nil)
		case errors.Is(err, errs.ErrOTPVerificationExpired):
			httperr.AbortWithError(c, http.StatusForbidden, err, "OTP verification expired", nil)
		case errors.Is(err, errs.ErrAccountInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is not active", nil)
		case errors.Is(err, errs.ErrWorkerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Worker not found", nil)
		case errors.Is(err, errs.ErrGiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Gift not found", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gift configuration", nil)
		case errors.Is(err, errs.ErrInsufficientBalance):
			httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient wallet balance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary Cancel own redemption
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /app/redemptions/{id}/cancel [post]
func (h *RedemptionHandler) Cancel(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	redemptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid redemption ID", nil)
		return
	}

	err = h.redemptionCommands.Cancel(c.Request.Context(), redemptionID, workerID, middleware.GetSubjectName(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRedemptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption not found", nil)
		case errors.Is(err, errs.ErrNotRequestOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Redemption belongs to another worker", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Only pending redemptions can be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List own redemptions
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.RedemptionListItem]
// @Router /app/redemptions [get]
func (h *RedemptionHandler) ListMine(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	items, pagination, err := h.redemptionQueries.ListByWorker(c.Request.Context(), workerID, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(items, pagination))
}

// @Summary List redemptions
// @Description Admin list with filters and per-status stats
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param worker_id query string false "Filter by worker"
// @Param search query string false "Search code, worker, or gift"
// @Success 200 {object} resdto.RedemptionListResponse
// @Router /web/redemptions [get]
func (h *RedemptionHandler) List(c *gin.Context) {
	filter := queries.RedemptionFilter{
		Status:   stringQuery(c, "status"),
		WorkerID: uuidQuery(c, "worker_id"),
		GiftID:   uuidQuery(c, "gift_id"),
		From:     timeQuery(c, "from"),
		To:       timeQuery(c, "to"),
		Search:   c.Query("search"),
	}

	items, pagination, stats, err := h.redemptionQueries.List(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.RedemptionListResponse{
		ListResponse: resdto.NewListResponse(items, pagination),
		Stats:        stats,
	})
}

// @Summary Redemption detail
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Success 200 {object} queries.RedemptionDetail
// @Failure 404 {object} httperr.Response
// @Router /web/redemptions/{id} [get]
func (h *RedemptionHandler) Detail(c *gin.Context) {
	redemptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid redemption ID", nil)
		return
	}

	detail, err := h.redemptionQueries.Detail(c.Request.Context(), redemptionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption not found", nil)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary Change redemption status
// @Description Advance the redemption through its lifecycle; cancellation restores points
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Redemption ID"
// @Param request body reqdto.ChangeRedemptionStatusRequest true "Target status"
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /web/redemptions/{id}/status [patch]
func (h *RedemptionHandler) ChangeStatus(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	redemptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid redemption ID", nil)
		return
	}

	var req reqdto.ChangeRedemptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	status, ok := redemption.ParseStatus(req.Status)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrValidation, "Unknown status", nil)
		return
	}

	actor := commands.Actor{ID: adminID, Name: middleware.GetSubjectName(c)}
	err = h.redemptionCommands.ChangeStatus(c.Request.Context(), redemptionID, status, actor, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRedemptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption not found", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
