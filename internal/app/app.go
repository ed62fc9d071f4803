package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"feedbackservice/internal/analyzer"
	"feedbackservice/internal/cache"
	"feedbackservice/internal/config"
	"feedbackservice/internal/data"
	"feedbackservice/internal/db"
	"feedbackservice/internal/digest"
	"feedbackservice/internal/llm"
	"feedbackservice/internal/logging"
	"feedbackservice/internal/storage"
	"feedbackservice/internal/workflow"
)

// Components are the pieces shared by the API server and the digest worker.
type Components struct {
	Repo      data.Repository
	Analyzer  *analyzer.Analyzer
	Generator *digest.Generator
	Engine    *workflow.Engine
	Runner    *digest.Runner

	closers []func()
}

func Build(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Components, error) {
	c := &Components{}
	ok := false
	defer func() {
		if !ok {
			c.Close()
		}
	}()

	repo, err := c.newRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Repo = repo

	client, err := llm.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	c.Analyzer = analyzer.New(repo, client, cfg.AnalysisMaxTokens, cfg.AnalyzeConcurrency, logger)
	c.Generator = digest.NewGenerator(client, digest.InsightsProfile(cfg.SummaryMaxTokens), digest.DailyProfile(cfg.DigestMaxTokens))

	runCache, err := c.newCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Engine = workflow.NewEngine(runCache, workflow.Options{
		MaxAttempts: cfg.StepMaxAttempts,
		BaseDelay:   cfg.StepBaseDelay,
		TTL:         cfg.RunTTL,
	}, logger)

	var archiver digest.Archiver
	if cfg.ArchiveEnabled() {
		s3Client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}
		if err := storage.EnsureBucket(ctx, s3Client, cfg.S3Bucket, logger); err != nil {
			return nil, err
		}
		archiver = digest.NewS3Archiver(s3Client, cfg.S3Bucket)
		logger.Info(ctx, "Digest archive enabled", zap.String("bucket", cfg.S3Bucket))
	}

	dispatcher := digest.NewDispatcher(cfg.DiscordWebhookURL, cfg.WebhookTimeout, logger)
	if cfg.DiscordWebhookURL == "" {
		logger.Warn(ctx, "DISCORD_WEBHOOK_URL is empty, digests will not be delivered")
	}
	job := digest.NewJob(repo, c.Generator, dispatcher, archiver, cfg.DigestLimit)
	c.Runner = digest.NewRunner(c.Engine, job)

	ok = true
	return c, nil
}

func (c *Components) newRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) (data.Repository, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		conn, err := db.NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = conn.Close() })
		logger.Info(ctx, "Using sqlite feedback store", zap.String("path", cfg.SQLitePath))
		return data.NewSQLiteRepository(conn), nil
	default:
		pool, err := db.NewPostgres(ctx, db.PostgresConfig{
			URL:           cfg.PostgresURL,
			MaxConns:      cfg.PostgresMaxConn,
			MinConns:      cfg.PostgresMinConn,
			AutoMigrate:   cfg.PostgresAutoMigrate,
			MigrationsURL: cfg.MigrationsURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		c.closers = append(c.closers, pool.Close)
		logger.Info(ctx, "Using postgres feedback store")
		return data.NewPostgresRepository(pool), nil
	}
}

func (c *Components) newCache(ctx context.Context, cfg *config.Config, logger *logging.Logger) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		logger.Info(ctx, "REDIS_URL is empty, workflow state kept in memory")
		return cache.NewMemoryCache(), nil
	}
	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return cache.NewRedisCache(rdb), nil
}

// Close releases connections in reverse order of creation.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
