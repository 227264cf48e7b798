package main

import (
	"context"
	"os/signal"
	"syscall"

	"resort/config"
	"resort/di"
	"resort/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mailer := di.InitializeMailer()

	log.Info().Str("topic", cfg.Kafka.Topic.Notifications).Msg("Starting notification consumer")

	mailer.Run(ctx)

	log.Info().Msg("Notification consumer stopped")
}
