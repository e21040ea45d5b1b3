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

	"github.com/rlin/jobdeck/internal/api"
	"github.com/rlin/jobdeck/internal/api/middleware"
	"github.com/rlin/jobdeck/internal/config"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/repository"
	"github.com/rlin/jobdeck/internal/service"
	"github.com/rlin/jobdeck/internal/storage"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	jobRepo := repository.NewJobRepository(db)
	contactRepo := repository.NewContactRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	prepRepo := repository.NewPrepRepository(db)

	// Initialize optional backup storage for CSV snapshots
	ctx := context.Background()
	var backupStore storage.ObjectStorage
	if cfg.Backup.Enabled {
		s3Store, err := storage.NewS3Store(&storage.S3Config{
			Endpoint:  cfg.Backup.Endpoint,
			AccessKey: cfg.Backup.AccessKey,
			SecretKey: cfg.Backup.SecretKey,
			UseSSL:    cfg.Backup.UseSSL,
			Bucket:    cfg.Backup.Bucket,
			Region:    cfg.Backup.Region,
			PublicURL: cfg.Backup.PublicURL,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize backup storage")
		}
		if err := s3Store.EnsureBucket(ctx); err != nil {
			appLogger.WithError(err).Fatal("Failed to ensure backup bucket")
		}
		backupStore = s3Store
		appLogger.WithField("bucket", cfg.Backup.Bucket).Info("Backup storage enabled")
	}

	// Initialize services
	activityService := service.NewActivityService(activityRepo, appLogger)
	jobService := service.NewJobService(jobRepo, contactRepo, interviewRepo, activityService, appLogger)
	prepService := service.NewPrepService(prepRepo)
	statsService := service.NewStatsService(jobRepo, interviewRepo)
	exportService := service.NewExportService(jobRepo, backupStore, appLogger)

	// Initialize auto-fill adapter
	parseService := service.NewParseService(&service.ParseConfig{
		Model:   cfg.AI.Model,
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
	})
	if parseService.IsEnabled() {
		appLogger.WithField("model", cfg.AI.Model).Info("AI job parsing enabled")
	}

	// Setup router
	router := api.SetupRouter(api.Services{
		Jobs:   jobService,
		Prep:   prepService,
		Stats:  statsService,
		Export: exportService,
		Parse:  parseService,
	}, appLogger, cfg.Server.Mode, middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
