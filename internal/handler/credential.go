package handler

import (
	"net/http"
	"strconv"

	v1 "keysentry/api/v1"
	"keysentry/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CredentialHandler struct {
	*Handler
	credentialService service.CredentialService
}

func NewCredentialHandler(handler *Handler, credentialService service.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		Handler:           handler,
		credentialService: credentialService,
	}
}

// CreateCredential godoc
// @Summary Register a cloud credential
// @Schemes
// @Description The secret is encrypted at rest and never returned.
// @Tags credential
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body v1.CreateCredentialRequest true "params"
// @Success 200 {object} v1.Response
// @Router /credentials [post]
func (h *CredentialHandler) CreateCredential(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	var req v1.CreateCredentialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		v1.HandleError(ctx, http.StatusBadRequest, v1.ErrBadRequest, nil)
		return
	}

	if err := h.credentialService.CreateCredential(ctx, userId, &req); err != nil {
		h.logger.WithContext(ctx).Error("credentialService.CreateCredential error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}

// ListCredentials godoc
// @Summary List own credentials with health state
// @Schemes
// @Description
// @Tags credential
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} v1.ListCredentialResponse
// @Router /credentials [get]
func (h *CredentialHandler) ListCredentials(ctx *gin.Context) {
	userId := GetUserIdFromCtx(ctx)
	if userId == "" {
		v1.HandleError(ctx, http.StatusUnauthorized, v1.ErrUnauthorized, nil)
		return
	}

	data, err := h.credentialService.ListCredentials(ctx, userId)
	if err != nil {
		h.logger.WithContext(ctx).Error("credentialService.ListCredentials error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, data)
}

// DeleteCredential godoc
// @Summary Delete a credential
// @Schemes
// @Description
// @Tags credential
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "credential id"
// @Success 200 {object} v1.Response
// @Router /credentials/{id} [delete]
func (h *CredentialHandler) DeleteCredential(ctx *gin.Context) {
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

	if err := h.credentialService.DeleteCredential(ctx, userId, id); err != nil {
		h.logger.WithContext(ctx).Error("credentialService.DeleteCredential error", zap.Error(err))
		v1.HandleError(ctx, http.StatusInternalServerError, err, nil)
		return
	}

	v1.HandleSuccess(ctx, nil)
}
