package handler

import (
	"net/http"
	"strconv"

	v1 "keysentry/api/v1"
	"keysentry/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	*Handler
	templateService service.TemplateService
}

func NewTemplateHandler(handler *Handler, templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		Handler:         handler,
		templateService: templateService,
	}
}

// CreateTemplate godoc
// @Summary Create an instance template
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateTemplateRequest true "params"
// @Success 200 {object} v1.Response
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.templateService.CreateTemplate(ctx, userId, &req); err != nil {
		h.logger.WithContext(ctx).Error("templateService.CreateTemplate error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// UpdateTemplate godoc
// @Summary Update an instance template
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "template id"
// @Param request body v1.UpdateTemplateRequest true "params"
// @Success 200 {object} v1.Response
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(ctx *gin.Context) {
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

	var req v1.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.templateService.UpdateTemplate(ctx, userId, id, &req); err != nil {
		h.logger.WithContext(ctx).Error("templateService.UpdateTemplate error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// DeleteTemplate godoc
// @Summary Delete an instance template
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "template id"
// @Success 200 {object} v1.Response
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(ctx *gin.Context) {
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

	if err := h.templateService.DeleteTemplate(ctx, userId, id); err != nil {
		h.logger.WithContext(ctx).Error("templateService.DeleteTemplate error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// GetTemplate godoc
// @Summary Template detail
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "template id"
// @Success 200 {object} v1.GetTemplateResponse
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(ctx *gin.Context) {
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

	detail, err := h.templateService.GetTemplate(ctx, userId, id)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.GetTemplate error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, detail)
}

// ListTemplates godoc
// @Summary List own templates
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Param provider query string false "filter by provider"
// @Success 200 {object} v1.ListTemplateResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.ListTemplateRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	data, err := h.templateService.ListTemplates(ctx, userId, &req)
	if err != nil {
		h.logger.WithContext(ctx).Error("templateService.ListTemplates error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

// SetDefaultTemplate godoc
// @Summary Mark a template as the per-provider default
// @Schemes
// @Description
// @Tags template
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "template id"
// @Success 200 {object} v1.Response
// @Router /templates/{id}/default [put]
func (h *TemplateHandler) SetDefaultTemplate(ctx *gin.Context) {
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

	if err := h.templateService.SetDefaultTemplate(ctx, userId, id); err != nil {
		h.logger.WithContext(ctx).Error("templateService.SetDefaultTemplate error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}
