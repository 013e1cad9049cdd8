package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"credcheck/internal/analyzer"
	"credcheck/internal/api"
	"credcheck/internal/config"
	"credcheck/internal/fetcher"
	"credcheck/internal/monitoring"
	"credcheck/internal/storage"
)

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Reputation tables: built-in curated lists, or a YAML override
	tables := analyzer.DefaultReputationTables()
	if cfg.SourcesFile != "" {
		tables, err = analyzer.LoadReputationTables(cfg.SourcesFile)
		if err != nil {
			logger.Fatal("could not load reputation tables", zap.Error(err))
		}
		logger.Info("loaded reputation tables",
			zap.String("file", cfg.SourcesFile),
			zap.Int("credible", len(tables.Credible)),
			zap.Int("questionable", len(tables.Questionable)),
		)
	}

	// Initialize Storage and Monitoring
	redisStore := storage.NewRedisStore(cfg.RedisAddr, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
	metrics := monitoring.NewMetrics()

	// Initialize Core Analyzer and Fetcher
	coreAnalyzer := analyzer.New(tables, cfg.MaxBatchSize)
	baseFetcher := fetcher.New(time.Duration(cfg.FetchTimeout)*time.Second, logger)
	cachingFetcher := fetcher.NewCachingFetcher(baseFetcher, redisStore, logger)

	// Initialize API Server
	server := api.NewServer(cfg, coreAnalyzer, cachingFetcher, redisStore, metrics, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
