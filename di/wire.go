//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/redis"
	"resort/infras/s3"
	"resort/internal/jobs"
	"resort/internal/notification"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	availabilityRepository "resort/internal/domains/availability/repository"
	availabilityService "resort/internal/domains/availability/service"
	authService "resort/internal/domains/auth/service"
	bookingRepository "resort/internal/domains/booking/repository"
	bookingService "resort/internal/domains/booking/service"
	packagesRepository "resort/internal/domains/packages/repository"
	packagesService "resort/internal/domains/packages/service"
	pricingService "resort/internal/domains/pricing/service"
	ratesRepository "resort/internal/domains/rates/repository"
	ratesService "resort/internal/domains/rates/service"
	roomRepository "resort/internal/domains/room/repository"
	roomService "resort/internal/domains/room/service"
	userRepository "resort/internal/domains/user/repository"

	authHandler "resort/internal/handlers/auth"
	availabilityHandler "resort/internal/handlers/availability"
	bookingHandler "resort/internal/handlers/booking"
	packagesHandler "resort/internal/handlers/packages"
	pricingHandler "resort/internal/handlers/pricing"
	ratesHandler "resort/internal/handlers/rates"
	roomHandler "resort/internal/handlers/room"

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

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var ratesDomain = wire.NewSet(
	ratesRepository.NewSeason,
	ratesRepository.NewMealPlan,
	ratesRepository.NewTax,
	ratesService.New,
)

var packagesDomain = wire.NewSet(
	packagesRepository.New,
	packagesService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	notification.NewProducer,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	ratesDomain,
	packagesDomain,
	pricingDomain,
	availabilityDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	ratesHandler.New,
	packagesHandler.New,
	pricingHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeMailer() *notification.Mailer {
	wire.Build(
		config.Get,
		kafka.New,
		notification.NewMailer,
	)

	return &notification.Mailer{}
}
