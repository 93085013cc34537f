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

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Anway-Kapoor/SentiNews/internal/analysis"
	"github.com/Anway-Kapoor/SentiNews/internal/config"
	"github.com/Anway-Kapoor/SentiNews/internal/fetch"
	"github.com/Anway-Kapoor/SentiNews/internal/hub"
	"github.com/Anway-Kapoor/SentiNews/internal/monitor"
	"github.com/Anway-Kapoor/SentiNews/internal/scheduler"
	"github.com/Anway-Kapoor/SentiNews/internal/sentiment"
	"github.com/Anway-Kapoor/SentiNews/internal/server"
	"github.com/Anway-Kapoor/SentiNews/internal/sources"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

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

	logrus.Info("Starting SentiNews server")

	// Assemble the pipeline: providers -> fetcher -> analyzer -> hub.
	providers := []sources.Provider{
		sources.NewNewsAPISource(cfg.NewsAPIKey),
		sources.NewHackerNewsSource(),
	}
	fetcher := fetch.NewService(providers, sources.NewGenerator())
	analyzer := analysis.NewAnalyzer(sentiment.NewScorer())

	broadcastHub := hub.New()
	monitorService := monitor.NewService(fetcher, analyzer, broadcastHub, cfg.IdleEvictionCycles)
	broadcastHub.SetTopicLister(monitorService)

	schedulerService := scheduler.NewService(cfg, monitorService)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	apiServer := server.New(cfg, fetcher, analyzer, monitorService, broadcastHub)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: apiServer.Router(),
		// No blanket write timeout: /ws connections are long-lived.
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

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
