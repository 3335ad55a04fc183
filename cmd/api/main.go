// ABOUTME: Main entry point for the OPDS Catalog API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opds-client-api/api"
	"opds-client-api/api/handlers"
	"opds-client-api/core/catalog"
	"opds-client-api/core/discovery"
	"opds-client-api/core/interfaces"
	stdhttp "opds-client-api/infrastructure/http/standard"
	logruslogger "opds-client-api/infrastructure/logger/logrus"
	"opds-client-api/infrastructure/registry/memory"
	"opds-client-api/infrastructure/registry/redis"
	"opds-client-api/infrastructure/registry/sqlite"
	"opds-client-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger()
	logger.Info("Starting OPDS Catalog API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"registry_type": cfg.Registry.Type,
	})

	// Create source registry
	var registry interfaces.SourceRegistry
	switch cfg.Registry.Type {
	case "redis":
		redisRegistry, err := redis.NewRegistry(cfg.Registry.Redis)
		if err != nil {
			logger.Error("Failed to create Redis registry, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			registry = memory.NewRegistry()
		} else {
			registry = redisRegistry
			defer redisRegistry.Close()
			logger.Info("Using Redis registry", map[string]interface{}{
				"address": cfg.Registry.Redis.Address,
			})
		}
	case "sqlite":
		sqliteRegistry, err := sqlite.NewRegistry(cfg.Registry.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite registry, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			registry = memory.NewRegistry()
		} else {
			registry = sqliteRegistry
			defer sqliteRegistry.Close()
			logger.Info("Using SQLite registry", map[string]interface{}{
				"path": cfg.Registry.SQLite.Path,
			})
		}
	default:
		registry = memory.NewRegistry()
		logger.Info("Using memory registry", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Server.HTTPTimeout) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
		Registry:   registry,
	}

	// Create services
	catalogService := catalog.NewService(deps)
	downloadService := catalog.NewDownloadService(deps)
	discoveryService := discovery.NewService(deps)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Limit,
		RateWindow: cfg.RateLimit.Window,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, registry)
	catalogHandler.RegisterRoutes(humaAPI)

	downloadHandler := handlers.NewDownloadHandler(downloadService, registry)
	downloadHandler.RegisterRoutes(humaAPI)

	sourcesHandler := handlers.NewSourcesHandler(registry, catalogService)
	sourcesHandler.RegisterRoutes(humaAPI)

	discoverHandler := handlers.NewDiscoverHandler(discoveryService)
	discoverHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	fmt.Println(`
   ____  ____  ____  _____    ___    ____  ____
  / __ \/ __ \/ __ \/ ___/   /   |  / __ \/  _/
 / / / / /_/ / / / /\__ \   / /| | / /_/ // /
/ /_/ / ____/ /_/ /___/ /  / ___ |/ ____// /
\____/_/   /_____//____/  /_/  |_/_/   /___/
	`)
}
