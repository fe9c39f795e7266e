package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sheetforecast.app/internal/mocks"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

type staticKeys struct {
	key string
	err error
}

func (s staticKeys) APIKey(ctx context.Context) (string, error) {
	return s.key, s.err
}

func newTestClient(t *testing.T, serverURL string, keys ports.APIKeySource) (*WeatherAPIClient, *mocks.MetricsRecorder) {
	t.Helper()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	metrics := mocks.NewMetricsRecorder(t)

	client, err := NewWeatherAPIClient(WeatherAPIClientParams{
		BaseURL: serverURL,
		Keys:    keys,
		Timeout: 5 * time.Second,
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)
	return client, metrics
}

func TestWeatherAPIClient_SearchCities_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Par is", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[
			{"id": 1, "name": "Paris", "region": "Ile-de-France", "country": "France", "lat": 48.87, "lon": 2.33},
			{"id": 2, "name": "Paris", "region": "", "country": "United States of America", "lat": 33.66, "lon": -95.56},
			{"id": 3, "name": "Parisot", "region": "Midi-Pyrenees", "country": "France", "lat": 44.25, "lon": 1}
		]`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "test-api-key"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointSearch, mock.Anything, true).Return()

	options, err := client.SearchCities(context.Background(), "Par is")

	require.NoError(t, err)
	assert.Equal(t, []ports.CityOption{
		{Label: "Paris, Ile-de-France", Value: "48.87,2.33"},
		{Label: "Paris, United States of America", Value: "33.66,-95.56"},
		{Label: "Parisot, Midi-Pyrenees", Value: "44.25,1"},
	}, options)
}

func TestWeatherAPIClient_SearchCities_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "bad"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointSearch, mock.Anything, false).Return()

	options, err := client.SearchCities(context.Background(), "Lon")

	assert.Nil(t, options)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, `Weather search failed: {"error":{"code":2006,"message":"API key is invalid."}}`, errors.Message(err))
}

func TestWeatherAPIClient_MissingKey(t *testing.T) {
	client, _ := newTestClient(t, "http://127.0.0.1:1", staticKeys{
		err: errors.NewConfigurationError("Missing WEATHER_API_KEY. Call setWeatherApiKey(key) once.", nil),
	})

	_, err := client.SearchCities(context.Background(), "Lon")
	assert.True(t, errors.IsConfigurationError(err))

	_, err = client.GetForecast(context.Background(), "1,2", 1)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestWeatherAPIClient_GetForecast_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "test-api-key", q.Get("key"))
		assert.Equal(t, "48.87,2.33", q.Get("q"))
		assert.Equal(t, "2", q.Get("days"))
		assert.Equal(t, "no", q.Get("aqi"))
		assert.Equal(t, "no", q.Get("alerts"))

		_, err := w.Write([]byte(`{
			"location": {"name": "Paris", "region": "Ile-de-France", "country": "France"},
			"forecast": {"forecastday": [
				{"date": "2024-01-01", "day": {
					"maxtemp_c": 7.5, "mintemp_c": 1.0, "avgtemp_c": 4.0,
					"maxwind_kph": 12.2, "totalprecip_mm": 0.0,
					"condition": {"text": "Sunny"}}},
				{"date": "2024-01-02", "day": {
					"maxtemp_c": 9.1, "mintemp_c": null, "avgtemp_c": 6.3,
					"totalprecip_mm": 3.4}},
				{"date": "2024-01-03"}
			]}
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "test-api-key"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointForecast, mock.Anything, true).Return()

	fc, err := client.GetForecast(context.Background(), "48.87,2.33", 2)

	require.NoError(t, err)
	assert.Equal(t, "Paris, Ile-de-France", fc.Location.DisplayName())
	require.Len(t, fc.Days, 3)

	first := fc.Days[0]
	require.NotNil(t, first.Condition)
	assert.Equal(t, "Sunny", *first.Condition)
	require.NotNil(t, first.TotalPrecipMm)
	assert.Equal(t, 0.0, *first.TotalPrecipMm)

	second := fc.Days[1]
	assert.Nil(t, second.MinTempC)
	assert.Nil(t, second.MaxWindKph)
	assert.Nil(t, second.Condition)
	assert.Equal(t, 9.1, *second.MaxTempC)

	third := fc.Days[2]
	assert.Equal(t, "2024-01-03", third.Date)
	assert.Nil(t, third.TotalPrecipMm)
}

func TestWeatherAPIClient_GetForecast_MissingSections(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "k"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointForecast, mock.Anything, true).Return()

	fc, err := client.GetForecast(context.Background(), "1,2", 1)

	require.NoError(t, err)
	assert.Empty(t, fc.Days)
	assert.Equal(t, ports.Location{}, fc.Location)
}

func TestWeatherAPIClient_GetForecast_TransportFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "k"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointForecast, mock.Anything, false).Return()

	fc, err := client.GetForecast(context.Background(), "0,0", 1)

	assert.Nil(t, fc)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, `Forecast request failed: {"error":{"code":1006,"message":"No matching location found."}}`, errors.Message(err))
}

func TestWeatherAPIClient_GetForecast_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer mockServer.Close()

	client, metrics := newTestClient(t, mockServer.URL, staticKeys{key: "k"})
	metrics.EXPECT().ObserveWeatherAPIRequest(EndpointForecast, mock.Anything, true).Return()

	_, err := client.GetForecast(context.Background(), "1,2", 1)

	assert.True(t, errors.IsExternalAPIError(err))
}

func TestNewWeatherAPIClient_Validation(t *testing.T) {
	_, err := NewWeatherAPIClient(WeatherAPIClientParams{})
	assert.True(t, errors.IsValidationError(err))
}
