package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	WeatherAPIKey  string
	WeatherBaseURL string

	// CacheTTL controls how long a fetched snapshot stays fresh.
	CacheTTL time.Duration

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// StatsInterval enables the periodic cache-stats log when > 0.
	StatsInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.WeatherBaseURL = os.Getenv("WEATHERAPI_BASE_URL")

	ttl, err := getenvDuration("CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = ttl

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	stats, err := getenvDuration("CACHE_STATS_INTERVAL", "0s")
	if err != nil {
		return nil, err
	}
	cfg.StatsInterval = stats

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
