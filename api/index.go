package handler

import (
	"net/http"

	"aula/config"
	"aula/di"
	"aula/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
