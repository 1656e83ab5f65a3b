package handler

import (
	"net/http"

	v1 "keysentry/api/v1"
	"keysentry/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	*Handler
	healthService service.HealthService
}

func NewHealthHandler(handler *Handler, healthService service.HealthService) *HealthHandler {
	return &HealthHandler{
		Handler:       handler,
		healthService: healthService,
	}
}

// RunSweep godoc
// @Summary Probe all own credentials now
// @Schemes
// @Description Runs one bounded-concurrency sweep and returns per-credential results.
// @Tags health
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.RunSweepRequest false "params"
// @Success 200 {object} v1.RunSweepResponse
// @Router /health/sweep [post]
func (h *HealthHandler) RunSweep(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.RunSweepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	summary, err := h.healthService.RunSweep(ctx, userId, req.BatchWidth)
	if err != nil {
		h.logger.WithContext(ctx).Error("healthService.RunSweep error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, summary)
}

// GetStats godoc
// @Summary Aggregated health counters
// @Schemes
// @Description
// @Tags health
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.HealthStatsResponse
// @Router /health/stats [get]
func (h *HealthHandler) GetStats(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	stats, err := h.healthService.GetStats(ctx, userId)
	if err != nil {
		h.logger.WithContext(ctx).Error("healthService.GetStats error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, stats)
}
