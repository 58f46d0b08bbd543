// Package lookup is the Go client for the weather lookup service, intended
// for front ends and other consumers of its HTTP API.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// APIError is the typed failure returned by the client. StatusCode is the
// HTTP status of the response, or 0 when the service could not be reached at
// all. Message is ready for direct display to a user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("weather lookup failed (status %d): %s", e.StatusCode, e.Message)
}

type ClientOption func(*Client)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// HTTPClientOption overrides the default http.Client.
func HTTPClientOption(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the service at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weather fetches the snapshot for city. Failures come back as *APIError with
// a message tailored to the status.
func (c *Client) Weather(ctx context.Context, city string) (*Snapshot, error) {
	endpoint := c.baseURL + "/api/weather?city=" + url.QueryEscape(city)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Message: "Unable to connect to the weather service. Please try again."}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "Unable to connect to the weather service. Please try again."}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    messageFor(resp.StatusCode, city),
		}
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "Received an unexpected response from the weather service.",
		}
	}
	return &snap, nil
}

func messageFor(status int, city string) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check the city name and try again."
	case http.StatusNotFound:
		return fmt.Sprintf("City '%s' not found. Please check the spelling and try again.", city)
	case http.StatusBadGateway:
		return "The weather service is temporarily unavailable. Please try again later."
	}
	return "Something went wrong while fetching the weather. Please try again."
}
