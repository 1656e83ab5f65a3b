package router

import (
	"keysentry/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitCredentialRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	credRouter := r.Group("/credentials").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		credRouter.POST("", deps.CredentialHandler.CreateCredential)
		credRouter.GET("", deps.CredentialHandler.ListCredentials)
		credRouter.DELETE("/:id", deps.CredentialHandler.DeleteCredential)
	}
}
