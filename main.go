package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/announcer"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/config"
	"github.com/flameunter/fanclub/internal/database"
	"github.com/flameunter/fanclub/internal/genai"
	server "github.com/flameunter/fanclub/internal/http"
	"github.com/flameunter/fanclub/internal/metrics"
	"github.com/flameunter/fanclub/internal/notifier/slack"
	"github.com/flameunter/fanclub/internal/pubsub"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clubStore := club.New(db, club.ModeratorCredentials{
		Username: cfg.Moderator.Username,
		Password: cfg.Moderator.Password,
	})
	if err := clubStore.Seed(); err != nil {
		log.Fatalf("Failed to seed store: %s", err)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	aiClient := genai.NewClient(cfg.Gemini.APIKey)
	fanNotifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	var events pubsub.PubSubClient
	if cfg.ProjectID != "" {
		events = pubsub.New(cfg.ProjectID)
	} else {
		log.Warn("No GCP project configured, events will not be published")
		events = pubsub.NewMock("")
	}
	ann := announcer.New(fanNotifier, metricsSvc, events)

	s := server.NewServer(clubStore, metricsSvc, metricsHandler, cfg, aiClient, ann)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
