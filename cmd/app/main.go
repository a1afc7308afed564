package main

import (
	"docai/config"
	"docai/di"
	"docai/helper"
	"docai/shared/logger"
	"docai/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title						DocAi Scheduler API
// @version					1.0
// @description				Appointment booking and symptom prediction backend.
// @BasePath					/
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
