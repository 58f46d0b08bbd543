package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "weather-lookup/internal/api/http"
	"weather-lookup/internal/cache"
	"weather-lookup/internal/config"
	"weather-lookup/internal/stats"
	"weather-lookup/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// In-memory snapshot cache with configured TTL; the weather client owns
	// no hidden state, everything is injected here.
	store := cache.New[weather.Snapshot](cfg.CacheTTL)
	client := weather.NewClient(httpClient, cfg.WeatherAPIKey, cfg.WeatherBaseURL, store)

	// Optional periodic cache-stats log.
	if cfg.StatsInterval > 0 {
		reporter := stats.New(client, cfg.StatsInterval)
		if err := reporter.Start(); err != nil {
			log.Fatalf("failed to start stats reporter: %v", err)
		}
		defer reporter.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// API routes, health check, and the JSON 404 fallback.
	httpapi.RegisterRoutes(app, client)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
