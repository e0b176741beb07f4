//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hostconnect/config"
	"hostconnect/infras/jwt"
	"hostconnect/infras/kafka"
	"hostconnect/infras/otel"
	"hostconnect/infras/payment"
	"hostconnect/infras/postgres"
	"hostconnect/infras/redis"
	"hostconnect/infras/s3"
	"hostconnect/shared/cache"
	"hostconnect/transport/http"
	"hostconnect/transport/http/middleware"
	"hostconnect/transport/http/router"

	addonRepository "hostconnect/internal/domains/addon/repository"
	addonService "hostconnect/internal/domains/addon/service"
	authService "hostconnect/internal/domains/auth/service"
	bookingRepository "hostconnect/internal/domains/booking/repository"
	bookingService "hostconnect/internal/domains/booking/service"
	mediaRepository "hostconnect/internal/domains/media/repository"
	mediaService "hostconnect/internal/domains/media/service"
	propertyRepository "hostconnect/internal/domains/property/repository"
	propertyService "hostconnect/internal/domains/property/service"
	roomRepository "hostconnect/internal/domains/room/repository"
	roomService "hostconnect/internal/domains/room/service"
	roomtypeRepository "hostconnect/internal/domains/roomtype/repository"
	roomtypeService "hostconnect/internal/domains/roomtype/service"
	userRepository "hostconnect/internal/domains/user/repository"

	addonHandler "hostconnect/internal/handlers/addon"
	authHandler "hostconnect/internal/handlers/auth"
	bookingHandler "hostconnect/internal/handlers/booking"
	healthHandler "hostconnect/internal/handlers/health"
	mediaHandler "hostconnect/internal/handlers/media"
	propertyHandler "hostconnect/internal/handlers/property"
	roomHandler "hostconnect/internal/handlers/room"
	roomtypeHandler "hostconnect/internal/handlers/roomtype"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomtypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var addonDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingService.NewSweeper,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	roomtypeDomain,
	roomDomain,
	addonDomain,
	mediaDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	propertyHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	addonHandler.New,
	bookingHandler.New,
	mediaHandler.New,
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
