package external

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// RateLimitedWeatherClient wraps a WeatherClient with a shared request budget
type RateLimitedWeatherClient struct {
	client  ports.WeatherClient
	limiter *rate.Limiter
}

// NewRateLimitedWeatherClient creates a rate limited client.
// rps may be fractional; burst is the maximum burst size allowed.
func NewRateLimitedWeatherClient(client ports.WeatherClient, rps float64, burst int) *RateLimitedWeatherClient {
	return &RateLimitedWeatherClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedWeatherClient) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.SearchCities(ctx, query)
}

func (r *RateLimitedWeatherClient) GetForecast(ctx context.Context, coord string, days int) (*ports.Forecast, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.GetForecast(ctx, coord, days)
}

func (r *RateLimitedWeatherClient) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewExternalAPIError("rate limit wait canceled", fmt.Errorf("rate limit: %w", err))
	}
	return nil
}

var _ ports.WeatherClient = (*RateLimitedWeatherClient)(nil)
