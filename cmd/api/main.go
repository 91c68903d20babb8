// ABOUTME: Main entry point for the OpenCosts API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"opencosts-api/api"
	"opencosts-api/api/handlers"
	"opencosts-api/api/middleware"
	"opencosts-api/core/catalog"
	"opencosts-api/core/discovery"
	"opencosts-api/core/expansion"
	"opencosts-api/core/interfaces"
	"opencosts-api/core/pipeline"
	"opencosts-api/core/refresh"
	"opencosts-api/core/snapshot"
	"opencosts-api/core/workers"
	"opencosts-api/infrastructure/cache/memory"
	"opencosts-api/infrastructure/cache/redis"
	"opencosts-api/infrastructure/cache/sqlite"
	stdhttp "opencosts-api/infrastructure/http/standard"
	"opencosts-api/infrastructure/logger/structured"
	"opencosts-api/infrastructure/metrics"
	"opencosts-api/pkg/config"
	"opencosts-api/pkg/featureflags"
	"opencosts-api/pkg/searchterms"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	envFile := flag.String("env", "", "path to a .env file")
	flag.Parse()

	cfg, err := config.Load(config.Options{ConfigFile: *configFile, EnvFile: *envFile})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	flags := featureflags.NewEnvManager("")
	ctx := featureflags.WithManager(context.Background(), flags)

	logger.Info("Starting OpenCosts API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"snapshot_type":    cfg.Snapshot.Type,
		"refresh_interval": cfg.Server.RefreshInterval.String(),
		"flags":            flags.GetAllFlags(),
	})

	var promMetrics *metrics.Prometheus
	var observer interfaces.Metrics
	if featureflags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		promMetrics = metrics.NewPrometheus()
		observer = promMetrics
	}

	httpClient := stdhttp.NewClient(stdhttp.Options{
		Timeout:   cfg.Catalog.Timeout,
		UserAgent: cfg.Catalog.UserAgent,
		Transport: &middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		},
	})

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    observer,
	}

	var storage interfaces.SnapshotStorage
	if featureflags.IsEnabled(ctx, featureflags.SnapshotEnabled) {
		cache, closer := buildCache(cfg.Snapshot, logger)
		if closer != nil {
			defer closer.Close()
		}
		deps.Cache = cache
		storage = snapshot.NewService(deps, cfg.Snapshot.TTL)
	}

	// Create services
	catalogClient := catalog.NewClient(deps, catalog.Config{
		BaseURL:    cfg.Catalog.BaseURL,
		APIBaseURL: cfg.Catalog.APIBaseURL,
	})
	discoveryService := discovery.NewService(catalogClient, deps, cfg.Catalog.Concurrency)
	expansionService := expansion.NewService(catalogClient, deps, cfg.Catalog.Concurrency)
	pipelineService := pipeline.NewService(discoveryService, expansionService, deps)

	terms := func() ([]string, error) {
		return searchterms.Load(cfg.Search.TermsFile, cfg.Search.DefaultTerms, logger)
	}
	refreshService := refresh.NewService(pipelineService, storage, deps, refresh.Options{
		Terms:               terms,
		CSVPath:             cfg.Output.CSVPath,
		IncludeCreationDate: cfg.Output.IncludeCreationDate,
	})

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: logger}
	if featureflags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow
	}
	if promMetrics != nil {
		apiConfig.MetricsHandler = promMetrics.Handler()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewSystemHandler().RegisterRoutes(humaAPI)
	handlers.NewRefreshHandler(refreshService).RegisterRoutes(humaAPI)
	handlers.NewModelsHandler(pipelineService, terms).RegisterRoutes(humaAPI)
	if storage != nil {
		handlers.NewSnapshotHandler(storage, filepath.Base(cfg.Output.CSVPath), cfg.Output.IncludeCreationDate).RegisterRoutes(humaAPI)
	}

	var refreshWorker *workers.RefreshWorker
	if featureflags.IsEnabled(ctx, featureflags.ScheduledRefresh) {
		refreshWorker = workers.NewRefreshWorker(refreshService, logger, workers.RefreshConfig{
			Interval:   cfg.Server.RefreshInterval,
			RunOnStart: true,
		})
		if err := refreshWorker.Start(); err != nil {
			log.Fatalf("Failed to start refresh worker: %v", err)
		}
	}

	// Refreshes fan out to many catalog requests, so the write timeout leaves room for them
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	if refreshWorker != nil {
		_ = refreshWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the snapshot backend. Redis and SQLite failures fall back to memory.
func buildCache(cfg config.SnapshotConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis snapshot store", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithCleanup(cfg.SQLite.Path, time.Hour)
		if err == nil {
			logger.Info("Using SQLite snapshot store", map[string]interface{}{
				"path": cfg.SQLite.Path,
			})
			return sqliteCache, sqliteCache
		}
		logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory snapshot store", nil)
	return memory.NewMemoryCache(), nil
}

func init() {
	fmt.Println(`
   ____                    ______          __
  / __ \____  ___  ____   / ____/___  _____/ /______
 / / / / __ \/ _ \/ __ \ / /   / __ \/ ___/ __/ ___/
/ /_/ / /_/ /  __/ / / // /___/ /_/ (__  ) /_(__  )
\____/ .___/\___/_/ /_/ \____/\____/____/\__/____/
    /_/
	`)
}
