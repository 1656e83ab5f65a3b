package handler

import (
	"net/http"
	"strconv"

	v1 "keysentry/api/v1"
	"keysentry/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReplenishHandler struct {
	*Handler
	replenishService service.ReplenishService
	configService    service.ReplenishConfigService
}

func NewReplenishHandler(
	handler *Handler,
	replenishService service.ReplenishService,
	configService service.ReplenishConfigService,
) *ReplenishHandler {
	return &ReplenishHandler{
		Handler:          handler,
		replenishService: replenishService,
		configService:    configService,
	}
}

// Trigger godoc
// @Summary Trigger one replenish attempt
// @Schemes
// @Description Selects a healthy credential and provisions a replacement instance. Always leaves an audit log entry.
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.TriggerReplenishRequest true "params"
// @Success 200 {object} v1.TriggerReplenishResponse
// @Router /replenish/trigger [post]
func (h *ReplenishHandler) Trigger(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.TriggerReplenishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.replenishService.Trigger(ctx, userId, &req)
	if err != nil {
		h.logger.WithContext(ctx).Error("replenishService.Trigger error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

// ListLogs godoc
// @Summary Replenish audit log
// @Schemes
// @Description Newest first.
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} v1.ListReplenishLogResponse
// @Router /replenish/logs [get]
func (h *ReplenishHandler) ListLogs(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.ListReplenishLogRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.replenishService.ListLogs(ctx, userId, &req)
	if err != nil {
		h.logger.WithContext(ctx).Error("replenishService.ListLogs error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

// GetConfig godoc
// @Summary Current auto-replenish config
// @Schemes
// @Description Returns disabled defaults when nothing is configured yet.
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.GetReplenishConfigResponse
// @Router /replenish/config [get]
func (h *ReplenishHandler) GetConfig(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	data, err := h.configService.GetConfig(ctx, userId)
	if err != nil {
		h.logger.WithContext(ctx).Error("configService.GetConfig error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

// UpdateConfig godoc
// @Summary Update auto-replenish config
// @Schemes
// @Description Partial update; omitted fields keep their values. check_interval must be at least 60 seconds.
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.UpdateReplenishConfigRequest true "params"
// @Success 200 {object} v1.Response
// @Router /replenish/config [put]
func (h *ReplenishHandler) UpdateConfig(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.UpdateReplenishConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.configService.UpdateConfig(ctx, userId, &req); err != nil {
		h.logger.WithContext(ctx).Error("configService.UpdateConfig error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// CreateTask godoc
// @Summary Create a watch task
// @Schemes
// @Description Task names are unique per user.
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateReplenishTaskRequest true "params"
// @Success 200 {object} v1.Response
// @Router /replenish/tasks [post]
func (h *ReplenishHandler) CreateTask(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.CreateReplenishTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.configService.CreateTask(ctx, userId, &req); err != nil {
		h.logger.WithContext(ctx).Error("configService.CreateTask error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// UpdateTask godoc
// @Summary Update a watch task
// @Schemes
// @Description
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "task id"
// @Param request body v1.UpdateReplenishTaskRequest true "params"
// @Success 200 {object} v1.Response
// @Router /replenish/tasks/{id} [put]
func (h *ReplenishHandler) UpdateTask(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	var req v1.UpdateReplenishTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.configService.UpdateTask(ctx, userId, id, &req); err != nil {
		h.logger.WithContext(ctx).Error("configService.UpdateTask error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// DeleteTask godoc
// @Summary Delete a watch task
// @Schemes
// @Description
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "task id"
// @Success 200 {object} v1.Response
// @Router /replenish/tasks/{id} [delete]
func (h *ReplenishHandler) DeleteTask(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.configService.DeleteTask(ctx, userId, id); err != nil {
		h.logger.WithContext(ctx).Error("configService.DeleteTask error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// ListTasks godoc
// @Summary List watch tasks
// @Schemes
// @Description
// @Tags replenish
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.ListReplenishTaskResponse
// @Router /replenish/tasks [get]
func (h *ReplenishHandler) ListTasks(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	data, err := h.configService.ListTasks(ctx, userId)
	if err != nil {
		h.logger.WithContext(ctx).Error("configService.ListTasks error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}
