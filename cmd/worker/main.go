package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"feedbackservice/internal/app"
	"feedbackservice/internal/config"
	"feedbackservice/internal/launcher"
	"feedbackservice/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	zapLogger, err := logging.NewZap(cfg.Development)
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)
	defer logger.Sync()

	if !cfg.KafkaEnabled() {
		logger.Fatal(ctx, "KAFKA_BROKERS is empty, nothing to consume")
	}

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "cannot build components", zap.Error(err))
	}
	defer components.Close()

	consumer := launcher.NewConsumer(cfg.KafkaBrokers, cfg.KafkaDigestTopic, cfg.KafkaGroupID, components.Runner, logger)
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error(ctx, "failed to close consumer", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Digest worker started",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaDigestTopic),
	)
	consumer.Run(ctx)
	logger.Info(ctx, "Digest worker stopped")
}
