// Package external provides adapters for external services
// These adapters implement ports for the weather provider and secret storage.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

const (
	DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

	EndpointSearch   = "search"
	EndpointForecast = "forecast"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIClient implements the city lookup and forecast ports for WeatherAPI.com
type WeatherAPIClient struct {
	baseURL string
	keys    ports.APIKeySource
	client  HTTPClient
	logger  ports.Logger
	metrics ports.MetricsRecorder
}

// WeatherAPIClientParams holds parameters for creating the WeatherAPI client
type WeatherAPIClientParams struct {
	BaseURL    string
	Keys       ports.APIKeySource
	HTTPClient HTTPClient
	Timeout    time.Duration
	Logger     ports.Logger
	Metrics    ports.MetricsRecorder
}

type searchResult struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type forecastResponse struct {
	Location *struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Forecast *struct {
		ForecastDay []forecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type forecastDay struct {
	Date string `json:"date"`
	Day  *struct {
		Condition *struct {
			Text *string `json:"text"`
		} `json:"condition"`
		MinTempC      *float64 `json:"mintemp_c"`
		MaxTempC      *float64 `json:"maxtemp_c"`
		AvgTempC      *float64 `json:"avgtemp_c"`
		MaxWindKph    *float64 `json:"maxwind_kph"`
		TotalPrecipMm *float64 `json:"totalprecip_mm"`
	} `json:"day"`
}

// NewWeatherAPIClient creates a new WeatherAPI client
func NewWeatherAPIClient(params WeatherAPIClientParams) (*WeatherAPIClient, error) {
	if params.Keys == nil {
		return nil, errors.NewValidationError("API key source is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &WeatherAPIClient{
		baseURL: baseURL,
		keys:    params.Keys,
		client:  client,
		logger:  params.Logger,
		metrics: params.Metrics,
	}, nil
}

// SearchCities calls search.json. It performs no short-query guard.
func (c *WeatherAPIClient) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("q", query)

	body, err := c.get(ctx, EndpointSearch, "/search.json", params, "Weather search failed: ")
	if err != nil {
		return nil, err
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode WeatherAPI search response", err)
	}

	options := make([]ports.CityOption, 0, len(results))
	for _, r := range results {
		options = append(options, toCityOption(r))
	}
	return options, nil
}

// GetForecast calls forecast.json for coord and days
func (c *WeatherAPIClient) GetForecast(ctx context.Context, coord string, days int) (*ports.Forecast, error) {
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("q", coord)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	body, err := c.get(ctx, EndpointForecast, "/forecast.json", params, "Forecast request failed: ")
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode WeatherAPI forecast response", err)
	}

	return toForecast(resp), nil
}

func (c *WeatherAPIClient) get(ctx context.Context, endpoint, path string, params url.Values, failurePrefix string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build WeatherAPI request", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.ObserveWeatherAPIRequest(endpoint, time.Since(start), false)
		return nil, errors.NewExternalAPIError(failurePrefix+err.Error(), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close WeatherAPI response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	ok := err == nil && resp.StatusCode == http.StatusOK
	c.metrics.ObserveWeatherAPIRequest(endpoint, time.Since(start), ok)
	if err != nil {
		return nil, errors.NewExternalAPIError(failurePrefix+err.Error(), err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(failurePrefix+string(body),
			fmt.Errorf("WeatherAPI %s returned status %d", endpoint, resp.StatusCode))
	}
	return body, nil
}

func toCityOption(r searchResult) ports.CityOption {
	area := r.Region
	if area == "" {
		area = r.Country
	}
	return ports.CityOption{
		Label: r.Name + ", " + area,
		Value: strconv.FormatFloat(r.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(r.Lon, 'f', -1, 64),
	}
}

func toForecast(resp forecastResponse) *ports.Forecast {
	fc := &ports.Forecast{}
	if resp.Location != nil {
		fc.Location = ports.Location{
			Name:    resp.Location.Name,
			Region:  resp.Location.Region,
			Country: resp.Location.Country,
		}
	}
	if resp.Forecast == nil {
		return fc
	}

	fc.Days = make([]ports.ForecastDay, 0, len(resp.Forecast.ForecastDay))
	for _, d := range resp.Forecast.ForecastDay {
		day := ports.ForecastDay{Date: d.Date}
		if d.Day != nil {
			if d.Day.Condition != nil && d.Day.Condition.Text != nil && *d.Day.Condition.Text != "" {
				day.Condition = d.Day.Condition.Text
			}
			day.MinTempC = d.Day.MinTempC
			day.MaxTempC = d.Day.MaxTempC
			day.AvgTempC = d.Day.AvgTempC
			day.MaxWindKph = d.Day.MaxWindKph
			day.TotalPrecipMm = d.Day.TotalPrecipMm
		}
		fc.Days = append(fc.Days, day)
	}
	return fc
}

var _ ports.WeatherClient = (*WeatherAPIClient)(nil)
