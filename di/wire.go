//go:build wireinject
// +build wireinject

package di

import (
	"aula/config"
	"aula/infras/otel"
	"aula/infras/postgres"
	"aula/infras/redis"
	courseHandler "aula/internal/handlers/course"
	roomHandler "aula/internal/handlers/room"
	scheduleHandler "aula/internal/handlers/schedule"
	"aula/shared/cache"
	"aula/transport/http"
	"aula/transport/http/middleware"
	"aula/transport/http/router"

	courseRepository "aula/internal/domains/course/repository"
	courseService "aula/internal/domains/course/service"
	roomRepository "aula/internal/domains/room/repository"
	roomService "aula/internal/domains/room/service"
	scheduleRepository "aula/internal/domains/schedule/repository"
	scheduleService "aula/internal/domains/schedule/service"

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
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var courseDomain = wire.NewSet(
	courseRepository.New,
	courseService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var domains = wire.NewSet(
	roomDomain,
	courseDomain,
	scheduleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	courseHandler.New,
	scheduleHandler.New,
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
