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

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/alerts"
	"github.com/brandpulse/social-monitor/internal/config"
	"github.com/brandpulse/social-monitor/internal/faq"
	"github.com/brandpulse/social-monitor/internal/notifications"
	"github.com/brandpulse/social-monitor/internal/reply"
	"github.com/brandpulse/social-monitor/internal/reports"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/brandpulse/social-monitor/internal/server"
	"github.com/brandpulse/social-monitor/internal/storage"
	"github.com/brandpulse/social-monitor/internal/store"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting social monitor")

	// All records live in memory for now. The stores are interfaces so a
	// database-backed implementation can be swapped in later.
	stores := store.NewMemoryStore()

	// Search and AI clients
	serperClient := search.NewSerperClient(cfg.SerperAPIKey, cfg.SerperURL)
	aggregator := search.NewAggregator(serperClient, stores)
	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIURL)

	// Generators
	replyGenerator := reply.NewGenerator(aiClient, stores, cfg.DefaultModel)
	faqGenerator := faq.NewGenerator(serperClient, aiClient, cfg.DefaultModel)

	// Alert rescans and notifications
	notificationService := notifications.NewService(cfg)
	runner := alerts.NewRunner(aggregator, stores, notificationService)

	if cfg.EnableAlertScheduler {
		scheduler := alerts.NewScheduler(stores, runner)
		if err := scheduler.Start(); err != nil {
			logrus.Fatalf("Failed to start alert scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// Report archive is optional and only configured when a storage
	// account is set.
	var archive storage.Archive
	if cfg.StorageAccount != "" {
		archive, err = storage.NewAzureArchive(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			logrus.Fatalf("Failed to initialize report archive: %v", err)
		}
	}
	reportService := reports.NewService(stores, archive)

	srv := server.New(cfg, stores, stores, stores, aggregator, replyGenerator, faqGenerator, runner, reportService)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
