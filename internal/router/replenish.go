package router

import (
	"keysentry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitReplenishRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	repRouter := r.Group("/replenish").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		repRouter.POST("/trigger", deps.ReplenishHandler.Trigger)
		repRouter.GET("/logs", deps.ReplenishHandler.ListLogs)
		repRouter.GET("/config", deps.ReplenishHandler.GetConfig)
		repRouter.PUT("/config", deps.ReplenishHandler.UpdateConfig)
		repRouter.POST("/tasks", deps.ReplenishHandler.CreateTask)
		repRouter.GET("/tasks", deps.ReplenishHandler.ListTasks)
		repRouter.PUT("/tasks/:id", deps.ReplenishHandler.UpdateTask)
		repRouter.DELETE("/tasks/:id", deps.ReplenishHandler.DeleteTask)
	}
}
