//go:build wireinject
// +build wireinject

package di

import (
	"comfort/config"
	"comfort/infras/otel"
	"comfort/infras/postgres"
	"comfort/infras/redis"
	"comfort/internal/domains/session"
	"comfort/transport/http"
	"comfort/transport/http/middleware"
	"comfort/transport/http/router"

	authService "comfort/internal/domains/auth/service"
	bookingRepository "comfort/internal/domains/booking/repository"
	bookingService "comfort/internal/domains/booking/service"
	contactRepository "comfort/internal/domains/contact/repository"
	contactService "comfort/internal/domains/contact/service"
	userRepository "comfort/internal/domains/user/repository"

	authHandler "comfort/internal/handlers/auth"
	bookingHandler "comfort/internal/handlers/booking"
	contactHandler "comfort/internal/handlers/contact"
	infoHandler "comfort/internal/handlers/info"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	session.NewStore,
	authService.New,
)

var domains = wire.NewSet(
	contactDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	contactHandler.New,
	bookingHandler.New,
	authHandler.New,
	infoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
