package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/core/services"
	"github.com/lilad25/intranet-portal/internal/core/store"
	"github.com/lilad25/intranet-portal/internal/handlers"
	"github.com/lilad25/intranet-portal/internal/middleware"
	"github.com/lilad25/intranet-portal/internal/platform/config"
	"github.com/lilad25/intranet-portal/internal/repositories/database/sqlitekv"
)

// @title Internal Portal API
// @version 1.0
// @description Backend for the internal portal: accounts, departments, employees and requests.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the embedded key-value database holding the persisted state
	repo, err := sqlitekv.New(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open state database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("State database opened", slog.String("path", cfg.DatabasePath))

	// Load the snapshot; first run (or a corrupt blob) seeds defaults
	st := store.New(repo, repo, logger)
	if err := st.Load(context.Background()); err != nil {
		logger.Error("Failed to load persisted state", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Portal state loaded")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcContainer := services.NewServiceContainer(st)
	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
