//go:build wireinject
// +build wireinject

package wire

import (
	"keysentry/internal/handler"
	"keysentry/internal/job"
	"keysentry/internal/repository"
	"keysentry/internal/router"
	"keysentry/internal/server"
	"keysentry/internal/service"
	"keysentry/pkg/app"
	"keysentry/pkg/cipher"
	"keysentry/pkg/jwt"
	"keysentry/pkg/log"
	"keysentry/pkg/notify"
	"keysentry/pkg/server/http"
	"keysentry/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRedis,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewUserRepository,
	repository.NewCredentialRepository,
	repository.NewInstanceTemplateRepository,
	repository.NewReplenishConfigRepository,
	repository.NewReplenishTaskRepository,
	repository.NewReplenishLogRepository,
)

var serviceSet = wire.NewSet(
	service.NewService,
	service.NewUserService,
	service.NewCredentialService,
	service.NewHealthService,
	service.NewTemplateService,
	service.NewNotifyService,
	service.NewReplenishService,
	service.NewReplenishConfigService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewUserHandler,
	handler.NewCredentialHandler,
	handler.NewHealthHandler,
	handler.NewTemplateHandler,
	handler.NewReplenishHandler,
)

var jobSet = wire.NewSet(
	job.NewJob,
	job.NewHealthSweepJob,
)

var serverSet = wire.NewSet(
	server.NewHTTPServer,
	server.NewJobServer,
)

// build App
func newApp(
	httpServer *http.Server,
	jobServer *server.JobServer,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer, jobServer),
		app.WithName("keysentry-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		serviceSet,
		handlerSet,
		jobSet,
		serverSet,
		wire.Struct(new(router.RouterDeps), "*"),
		sid.NewSid,
		jwt.NewJwt,
		cipher.NewCipher,
		notify.NewWebhookNotifier,
		newApp,
	))
}
