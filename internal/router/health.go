package router

import (
	"keysentry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitHealthRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	healthRouter := r.Group("/health").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		healthRouter.POST("/sweep", deps.HealthHandler.RunSweep)
		healthRouter.GET("/stats", deps.HealthHandler.GetStats)
	}
}
