//go:build wireinject
// +build wireinject

package di

import (
	"jaruri/config"
	"jaruri/infras/jwt"
	"jaruri/infras/kafka"
	"jaruri/infras/otel"
	"jaruri/infras/postgres"
	"jaruri/infras/redis"
	"jaruri/infras/s3"
	"jaruri/internal/events"
	"jaruri/internal/integrations/zapier"
	"jaruri/permissions"
	"jaruri/shared/cache"
	"jaruri/transport/http"
	"jaruri/transport/http/middleware"
	"jaruri/transport/http/router"

	authService "jaruri/internal/domains/auth/service"
	bookingRepository "jaruri/internal/domains/booking/repository"
	bookingService "jaruri/internal/domains/booking/service"
	catalogRepository "jaruri/internal/domains/catalog/repository"
	catalogService "jaruri/internal/domains/catalog/service"
	contactRepository "jaruri/internal/domains/contact/repository"
	contactService "jaruri/internal/domains/contact/service"
	locationRepository "jaruri/internal/domains/location/repository"
	locationService "jaruri/internal/domains/location/service"
	professionalRepository "jaruri/internal/domains/professional/repository"
	professionalService "jaruri/internal/domains/professional/service"
	reviewRepository "jaruri/internal/domains/review/repository"
	reviewService "jaruri/internal/domains/review/service"
	statsService "jaruri/internal/domains/stats/service"
	userRepository "jaruri/internal/domains/user/repository"

	authHandler "jaruri/internal/handlers/auth"
	bookingHandler "jaruri/internal/handlers/booking"
	catalogHandler "jaruri/internal/handlers/catalog"
	contactHandler "jaruri/internal/handlers/contact"
	locationHandler "jaruri/internal/handlers/location"
	professionalHandler "jaruri/internal/handlers/professional"
	reviewHandler "jaruri/internal/handlers/review"
	statsHandler "jaruri/internal/handlers/stats"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventGlue = wire.NewSet(
	zapier.New,
	events.NewDispatcher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewService,
	catalogService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var professionalDomain = wire.NewSet(
	professionalRepository.New,
	professionalService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.NewContact,
	contactRepository.NewNotification,
	contactService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	locationDomain,
	professionalDomain,
	bookingDomain,
	reviewDomain,
	contactDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogHandler.New,
	locationHandler.New,
	professionalHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	contactHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventGlue,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
