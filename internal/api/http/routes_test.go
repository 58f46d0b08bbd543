package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-lookup/internal/cache"
	"weather-lookup/internal/weather"
)

const bostonFixture = `{
	"location": {
		"name": "Boston",
		"country": "United States of America",
		"lat": 42.36,
		"lon": -71.06,
		"tz_id": "America/New_York"
	},
	"current": {
		"temp_c": 12.2,
		"temp_f": 54.0,
		"condition": {"text": "Overcast", "icon": "//cdn.weatherapi.com/day/122.png"},
		"wind_kph": 16.9,
		"humidity": 71,
		"feelslike_c": 10.8
	},
	"forecast": {
		"forecastday": [
			{
				"date": "2024-06-01",
				"day": {
					"mintemp_c": 8.1, "maxtemp_c": 15.4,
					"mintemp_f": 46.6, "maxtemp_f": 59.7,
					"daily_chance_of_rain": 40, "daily_chance_of_snow": 5,
					"condition": {"text": "Patchy rain", "icon": "//cdn.weatherapi.com/day/176.png"}
				}
			}
		]
	}
}`

// newTestApp builds a fiber app backed by a stubbed upstream provider.
func newTestApp(t *testing.T, upstream http.HandlerFunc) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	store := cache.New[weather.Snapshot](time.Minute)
	client := weather.NewClient(srv.Client(), "test-key", srv.URL, store)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, client)
	return app
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestWeatherSuccess(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bostonFixture))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather?city=Boston", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap weather.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, "Boston", snap.City)
	assert.Equal(t, 12.2, snap.Current.TempC)
	require.Len(t, snap.Forecast, 1)
	assert.Equal(t, 40, snap.Forecast[0].PrecipChance)
}

func TestWeatherValidation(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for invalid input")
	})

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{
			name:    "missing parameter",
			target:  "/api/weather",
			wantMsg: "Missing required parameter: city",
		},
		{
			name:    "blank after trim",
			target:  "/api/weather?city=%20%20",
			wantMsg: "City parameter cannot be empty",
		},
		{
			name:    "too long",
			target:  "/api/weather?city=" + strings.Repeat("a", 101),
			wantMsg: "City parameter is too long (max 100 characters)",
		},
		{
			name:    "invalid characters",
			target:  "/api/weather?city=%3Cscript%3E",
			wantMsg: "City parameter contains invalid characters",
		},
		{
			name:    "digits rejected",
			target:  "/api/weather?city=City17",
			wantMsg: "City parameter contains invalid characters",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.wantMsg, errorBody(t, resp))
		})
	}
}

func TestValidationMessageMapping(t *testing.T) {
	msg, err := validateCity("Boston")
	require.NoError(t, err)
	assert.Empty(t, msg)

	msg, err = validateCity("")
	require.NoError(t, err)
	assert.Equal(t, "City parameter cannot be empty", msg)

	msg, err = validateCity(strings.Repeat("a", 101))
	require.NoError(t, err)
	assert.Equal(t, "City parameter is too long (max 100 characters)", msg)

	msg, err = validateCity("<script>")
	require.NoError(t, err)
	assert.Equal(t, "City parameter contains invalid characters", msg)
}

func TestValidationMessageUnexpectedError(t *testing.T) {
	// A failure that is not a rule violation must not read as a charset
	// rejection; it surfaces as an error for the 500 path.
	boom := errors.New("boom")
	msg, err := validationMessage(boom)
	assert.Empty(t, msg)
	assert.ErrorIs(t, err, boom)
}

func TestWeatherAcceptsPunctuatedNames(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bostonFixture))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather?city=Saint-L%C3%B4", nil))
	require.NoError(t, err)
	// Accented characters are outside the ASCII allow-list.
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/weather?city=L%27Aquila,%20Italy", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWeatherCityNotFound(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 1006, "message": "No matching location found."}}`))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather?city=Nowhereville", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "City not found", errorBody(t, resp))
}

func TestWeatherUpstreamFailure(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/weather?city=Boston", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	// The provider detail is logged, never surfaced.
	assert.Equal(t, "Upstream weather service error", errorBody(t, resp))
}

func TestUnmatchedRoute(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", errorBody(t, resp))
}
