package router

import (
	"keysentry/internal/handler"
	"keysentry/pkg/jwt"
	"keysentry/pkg/log"

	"github.com/spf13/viper"
)

type RouterDeps struct {
	Logger            *log.Logger
	Config            *viper.Viper
	JWT               *jwt.JWT
	UserHandler       *handler.UserHandler
	CredentialHandler *handler.CredentialHandler
	HealthHandler     *handler.HealthHandler
	TemplateHandler   *handler.TemplateHandler
	ReplenishHandler  *handler.ReplenishHandler
}
