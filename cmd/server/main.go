package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"feedbackservice/internal/app"
	"feedbackservice/internal/config"
	"feedbackservice/internal/grpcserver"
	"feedbackservice/internal/handler"
	"feedbackservice/internal/launcher"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/scheduler"
	"feedbackservice/internal/service"
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

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "cannot build components", zap.Error(err))
	}
	defer components.Close()

	var digestLauncher launcher.Launcher
	if cfg.KafkaEnabled() {
		digestLauncher = launcher.NewKafkaLauncher(cfg.KafkaBrokers, cfg.KafkaDigestTopic)
		logger.Info(ctx, "Digest runs handed off to kafka", zap.String("topic", cfg.KafkaDigestTopic))
	} else {
		digestLauncher = launcher.NewInlineLauncher(components.Runner, logger)
	}
	defer digestLauncher.Close()

	feedbackService := service.NewFeedbackService(
		components.Repo,
		components.Analyzer,
		components.Generator,
		components.Engine,
		digestLauncher,
		logger,
	)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	var wg sync.WaitGroup
	digestWorker := scheduler.NewDigestWorker(feedbackService, logger, cfg.DigestInterval)
	wg.Add(1)
	go func() {
		defer wg.Done()
		digestWorker.Start(ctx)
	}()

	var grpcSrv *grpcserver.Server
	if cfg.GRPCPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
		if err != nil {
			logger.Fatal(ctx, "failed to listen", zap.Error(err))
		}
		grpcSrv = grpcserver.New(logger)
		go func() {
			logger.Info(ctx, "Starting health server", zap.Int("port", cfg.GRPCPort))
			if err := grpcSrv.Serve(lis); err != nil {
				logger.Error(ctx, "health server stopped", zap.Error(err))
			}
		}()
	}

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:              port,
		Handler:           handler.NewRouter(feedbackHandler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	if grpcSrv != nil {
		grpcSrv.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server forced to shutdown", zap.Error(err))
	}
	wg.Wait()
	logger.Info(ctx, "Server stopped")
}
