// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"aula/config"
	"aula/infras/otel"
	"aula/infras/postgres"
	"aula/infras/redis"
	repository3 "aula/internal/domains/course/repository"
	service3 "aula/internal/domains/course/service"
	"aula/internal/domains/room/repository"
	"aula/internal/domains/room/service"
	repository2 "aula/internal/domains/schedule/repository"
	service2 "aula/internal/domains/schedule/service"
	"aula/internal/handlers/course"
	"aula/internal/handlers/room"
	"aula/internal/handlers/schedule"
	"aula/shared/cache"
	"aula/transport/http"
	"aula/transport/http/middleware"
	"aula/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryRoom := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceRoom := service.New(repositoryRoom, configConfig, redisCache, otelOtel)
	repositorySchedule := repository2.New(connection, otelOtel)
	repositoryCourse := repository3.New(connection, otelOtel)
	serviceSchedule := service2.New(repositorySchedule, repositoryRoom, repositoryCourse, configConfig, redisCache, otelOtel)
	handler := room.New(serviceRoom, serviceSchedule, otelOtel)
	serviceCourse := service3.New(repositoryCourse, configConfig, redisCache, otelOtel)
	courseHandler := course.New(serviceCourse, serviceSchedule, otelOtel)
	scheduleHandler := schedule.New(serviceSchedule, otelOtel)
	domainHandlers := router.DomainHandlers{
		Room:     handler,
		Course:   courseHandler,
		Schedule: scheduleHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var roomDomain = wire.NewSet(repository.New, service.New)

var courseDomain = wire.NewSet(repository3.New, service3.New)

var scheduleDomain = wire.NewSet(repository2.New, service2.New)

var domains = wire.NewSet(
	roomDomain,
	courseDomain,
	scheduleDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), room.New, course.New, schedule.New, router.New)
