//go:build wireinject
// +build wireinject

package di

import (
	"docai/config"
	"docai/infras/mail"
	"docai/infras/otel"
	"docai/infras/postgres"
	"docai/infras/predictor"
	"docai/infras/redis"
	"docai/infras/s3"
	"docai/infras/sms"
	appointmentHandler "docai/internal/handlers/appointment"
	healthHandler "docai/internal/handlers/health"
	patientHandler "docai/internal/handlers/patient"
	"docai/shared/cache"
	"docai/transport/http"
	"docai/transport/http/middleware"
	"docai/transport/http/router"

	"docai/internal/domains/appointment/notification"
	appointmentRepository "docai/internal/domains/appointment/repository"
	appointmentService "docai/internal/domains/appointment/service"
	"docai/internal/domains/appointment/slip"

	patientRepository "docai/internal/domains/patient/repository"
	patientService "docai/internal/domains/patient/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	mail.New,
	sms.New,
	predictor.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCounter,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	slip.New,
	notification.New,
	appointmentService.New,
)

var patientDomain = wire.NewSet(
	patientRepository.New,
	patientService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	patientDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	wire.Bind(new(healthHandler.Pinger), new(*postgres.Connection)),
	appointmentHandler.New,
	patientHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
