package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-service/config"
	_ "inventory-service/docs" // Swagger docs
	"inventory-service/internal/auth"
	"inventory-service/internal/httpserver"
	itemUC "inventory-service/internal/item/usecase"
	"inventory-service/pkg/log"
	"inventory-service/pkg/scope"
	"inventory-service/pkg/sqlite"
)

// @title       Inventory Service API
// @description CRUD over stock items with optional JWT-protected, paginated variant.
// @version     2
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "API version: %d", cfg.HTTPServer.APIVersion)

	// 3. Storage
	db, err := sqlite.Open(sqlite.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Token manager (API v2 only)
	var jwtManager scope.Manager
	if cfg.HTTPServer.APIVersion == config.APIVersionSecure {
		jwtManager, err = scope.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize token manager: ", err)
			return
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		APIVersion:  cfg.HTTPServer.APIVersion,
		DB:          db,
		JWTManager:  jwtManager,
		Credentials: auth.Credentials{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		},
		LoginRateLimitPerMin: cfg.Auth.LoginRateLimitPerMin,
		Pagination: itemUC.Config{
			DefaultPageSize: cfg.Pagination.DefaultSize,
			MaxPageSize:     cfg.Pagination.MaxSize,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
