package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentkart-storefront/internal/api"
	"rentkart-storefront/internal/config"
	"rentkart-storefront/internal/logger"
	"rentkart-storefront/internal/scheduler"
	"rentkart-storefront/internal/security"
	"rentkart-storefront/internal/store"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting storefront core...", "api", cfg.API.BaseURL)

	tokens := security.NewTokenStore()
	if token := os.Getenv("RENTKART_API_TOKEN"); token != "" {
		tokens.SetToken(token)
	}

	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, tokens)
	st := store.New(client, tokens)

	// Initial sync; each collection logs its own failures.
	st.RefreshAll(context.Background())

	sched := scheduler.NewScheduler(cfg.Scheduler, st)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down storefront core...")
}
