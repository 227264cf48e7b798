package main

import (
	"resort/config"
	"resort/di"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Jobs.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background jobs")
	}
	defer app.Jobs.Stop()

	app.HTTP.Serve()
}
