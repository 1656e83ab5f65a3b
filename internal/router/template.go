package router

import (
	"keysentry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitTemplateRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	tplRouter := r.Group("/templates").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		tplRouter.POST("", deps.TemplateHandler.CreateTemplate)
		tplRouter.GET("", deps.TemplateHandler.ListTemplates)
		tplRouter.GET("/:id", deps.TemplateHandler.GetTemplate)
		tplRouter.PUT("/:id", deps.TemplateHandler.UpdateTemplate)
		tplRouter.DELETE("/:id", deps.TemplateHandler.DeleteTemplate)
		tplRouter.PUT("/:id/default", deps.TemplateHandler.SetDefaultTemplate)
	}
}
