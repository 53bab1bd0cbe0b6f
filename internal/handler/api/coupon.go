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
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	batchCommands  commands.CouponBatchCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(
	couponCommands commands.CouponCommands,
	batchCommands commands.CouponBatchCommands,
	couponQueries queries.CouponQueries,
) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		batchCommands:  batchCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Scan coupons
// @Description Scan one or more coupon codes and credit points to the wallet
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanCouponsRequest true "Coupon codes"
// @Success 200 {object} commands.ScanResult
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /app/coupons/scan [post]
func (h *CouponHandler) Scan(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	var req reqdto.ScanCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	codes := req.NormalizedCodes()
	if len(codes) == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrValidation, "No coupon codes provided", nil)
		return
	}

	result, err := h.couponCommands.Scan(c.Request.Context(), workerID, codes)
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

// @Summary Scan history
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.ScanHistoryItem]
// @Router /app/coupons/history [get]
func (h *CouponHandler) ScanHistory(c *gin.Context) {
	workerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	items, pagination, err := h.couponQueries.ScanHistory(c.Request.Context(), workerID, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(items, pagination))
}

// @Summary Generate coupon batch
// @Description Create a coupon batch and all its printable codes
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateBatchRequest true "Batch parameters"
// @Success 201 {object} commands.GenerateBatchResult
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /web/coupons/batches [post]
func (h *CouponHandler) GenerateBatch(c *gin.Context) {
	adminID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing subject"), "Internal server error", nil)
		return
	}

	var req reqdto.GenerateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.batchCommands.Generate(c.Request.Context(), commands.GenerateBatchInput{
		BatchNumber:     req.BatchNumber,
		PointsPerCoupon: req.PointsPerCoupon,
		TotalCoupons:    req.TotalCoupons,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
		CreatedBy:       &adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid batch parameters", nil)
		case errors.Is(err, errs.ErrDuplicateBatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Batch number already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary List coupon batches
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse[queries.BatchListItem]
// @Router /web/coupons/batches [get]
func (h *CouponHandler) ListBatches(c *gin.Context) {
	items, pagination, err := h.couponQueries.ListBatches(c.Request.Context(), pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(items, pagination))
}

// @Summary List coupon codes
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param batch_id query string false "Filter by batch"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.ListResponse[queries.CouponListItem]
// @Router /web/coupons [get]
func (h *CouponHandler) ListCodes(c *gin.Context) {
	filter := queries.CouponFilter{
		BatchID: uuidQuery(c, "batch_id"),
		Status:  stringQuery(c, "status"),
	}

	items, pagination, err := h.couponQueries.ListCodes(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewListResponse(items, pagination))
}
