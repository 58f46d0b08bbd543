package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"weather-lookup/internal/cache"
)

// DefaultBaseURL is the provider's forecast endpoint. Tests point the client
// at an httptest server instead.
const DefaultBaseURL = "https://api.weatherapi.com/v1/forecast.json"

const forecastDays = 7

// Client resolves a city name to a normalized Snapshot, consulting the cache
// before going to the provider. The cache is injected so callers own its
// lifetime; there is no hidden process-wide state.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	store      *cache.Cache[Snapshot]
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client. An empty baseURL falls back to DefaultBaseURL.
func NewClient(httpClient *http.Client, apiKey, baseURL string, store *cache.Cache[Snapshot]) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		store:      store,
		circuit:    cb,
	}
}

// Lookup returns the weather snapshot for city. A cache hit within the TTL
// returns the stored snapshot without touching the network; a miss fetches
// from the provider, normalizes, and populates the cache. There are no
// retries: failures surface immediately.
func (c *Client) Lookup(ctx context.Context, city string) (Snapshot, error) {
	if snap, ok := c.store.Get(city); ok {
		return snap, nil
	}

	if c.apiKey == "" {
		return Snapshot{}, &UpstreamError{Message: "weatherapi api key is not configured"}
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", city)
	values.Set("days", strconv.Itoa(forecastDays))
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return Snapshot{}, &UpstreamError{Message: "failed to build provider request", Err: err}
	}

	// The breaker wraps a single attempt; an open circuit fails fast with
	// the same error kind as a transport failure.
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return Snapshot{}, &UpstreamError{Message: "weather provider temporarily unavailable", Err: err}
		}
		return Snapshot{}, &UpstreamError{Message: "weather provider request failed", Err: err}
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, &UpstreamError{Message: "failed to read provider response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Snapshot{}, classifyFailure(resp.StatusCode, body)
	}

	var payload upstreamPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Snapshot{}, &UpstreamError{Message: "failed to decode provider response", Err: err}
	}

	snap := normalize(payload)
	c.store.Set(city, snap)
	return snap, nil
}

// classifyFailure inspects a non-success provider response. The provider's
// structured error code takes precedence over the HTTP status: code 1006
// means the city does not exist, whatever status accompanied it.
func classifyFailure(status int, body []byte) error {
	var envelope upstreamErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil &&
		envelope.Error.Code == upstreamCodeNoLocation {
		return ErrNotFound
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &UpstreamError{Message: "invalid API key"}
	case http.StatusTooManyRequests:
		return &UpstreamError{Message: "rate limit exceeded"}
	}

	if envelope.Error.Message != "" {
		return &UpstreamError{Message: envelope.Error.Message}
	}
	return &UpstreamError{Message: fmt.Sprintf("weather provider returned status %d", status)}
}

// ClearCache drops all cached snapshots.
func (c *Client) ClearCache() {
	c.store.Clear()
}

// CacheSize returns the number of live cached snapshots.
func (c *Client) CacheSize() int {
	return c.store.Size()
}
