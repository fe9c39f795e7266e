package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

func TestNewHTTPBridge(t *testing.T) {
	_, err := NewHTTPBridge("  ", time.Second)
	assert.True(t, errors.IsBridgeUnavailableError(err))
}

func TestHTTPBridge_SearchCities(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cities", r.URL.Path)
		assert.Equal(t, "São Paulo", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"label":"Sao Paulo, Sao Paulo","value":"-23.53,-46.62"}]`))
	}))
	defer mockServer.Close()

	bridge, err := NewHTTPBridge(mockServer.URL+"/", time.Second)
	require.NoError(t, err)

	options, err := bridge.SearchCities(context.Background(), "São Paulo")

	require.NoError(t, err)
	assert.Equal(t, []ports.CityOption{{Label: "Sao Paulo, Sao Paulo", Value: "-23.53,-46.62"}}, options)
}

func TestHTTPBridge_SearchCities_EmptyList(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	bridge, err := NewHTTPBridge(mockServer.URL, time.Second)
	require.NoError(t, err)

	options, err := bridge.SearchCities(context.Background(), "zz")
	require.NoError(t, err)
	assert.NotNil(t, options)
	assert.Empty(t, options)
}

func TestHTTPBridge_GenerateWeatherReport(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ports.ReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "48.87,2.33", req.CityCoord)
		assert.Equal(t, 2, req.Days)
		require.NotNil(t, req.Filters.Wind)
		assert.False(t, *req.Filters.Wind)

		_, _ = w.Write([]byte(`{"reportId":"abc","outcome":"written","title":"Weather Forecast: Paris, Ile-de-France (start 2024-01-01, 2 days)","rows":2}`))
	}))
	defer mockServer.Close()

	bridge, err := NewHTTPBridge(mockServer.URL, time.Second)
	require.NoError(t, err)

	off := false
	summary, err := bridge.GenerateWeatherReport(context.Background(), ports.ReportRequest{
		CityCoord: "48.87,2.33",
		StartDate: "2024-01-01",
		Days:      2,
		Filters:   ports.Filters{Wind: &off},
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", summary.ReportID)
	assert.Equal(t, "written", summary.Outcome)
	assert.Equal(t, 2, summary.Rows)
}

func TestHTTPBridge_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "validation",
			status:  http.StatusBadRequest,
			body:    `{"error":"Days must be >= 1","type":"VALIDATION_ERROR"}`,
			check:   errors.IsValidationError,
			message: "Days must be >= 1",
		},
		{
			name:    "transport",
			status:  http.StatusBadGateway,
			body:    `{"error":"Forecast request failed: {\"error\":1}","type":"EXTERNAL_API_ERROR"}`,
			check:   errors.IsExternalAPIError,
			message: `Forecast request failed: {"error":1}`,
		},
		{
			name:    "missing_key",
			status:  http.StatusPreconditionFailed,
			body:    `{"error":"Missing WEATHER_API_KEY. Call setWeatherApiKey(key) once.","type":"CONFIGURATION_ERROR"}`,
			check:   errors.IsConfigurationError,
			message: "Missing WEATHER_API_KEY. Call setWeatherApiKey(key) once.",
		},
		{
			name:    "not_json",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			check:   errors.IsBridgeUnavailableError,
			message: "Host returned status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer mockServer.Close()

			bridge, err := NewHTTPBridge(mockServer.URL, time.Second)
			require.NoError(t, err)

			_, err = bridge.GenerateWeatherReport(context.Background(), ports.ReportRequest{})
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.message, errors.Message(err))
		})
	}
}

func TestHTTPBridge_HostUnreachable(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := mockServer.URL
	mockServer.Close()

	bridge, err := NewHTTPBridge(url, time.Second)
	require.NoError(t, err)

	_, err = bridge.SearchCities(context.Background(), "Lon")
	assert.True(t, errors.IsBridgeUnavailableError(err))
	assert.Equal(t, "Host is unreachable", errors.Message(err))
}

func TestHTTPBridge_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer mockServer.Close()
	defer close(release)

	bridge, err := NewHTTPBridge(mockServer.URL, 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bridge.SearchCities(ctx, "Lon")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPBridge_SetAPIKey(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/settings/api-key", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "secret", body["key"])
		_, _ = w.Write([]byte(`{"message":"API key saved"}`))
	}))
	defer mockServer.Close()

	bridge, err := NewHTTPBridge(mockServer.URL, time.Second)
	require.NoError(t, err)
	assert.NoError(t, bridge.SetAPIKey(context.Background(), "secret"))
}
