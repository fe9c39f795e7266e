package external

import (
	"context"
	"time"

	"sheetforecast.app/internal/ports"
)

// WeatherClientLoggingDecorator logs every WeatherAPI call with its duration
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) *WeatherClientLoggingDecorator {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

func (d *WeatherClientLoggingDecorator) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	var options []ports.CityOption
	err := d.observe(EndpointSearch, []ports.Field{ports.F("query", query)}, func() ([]ports.Field, error) {
		var err error
		options, err = d.client.SearchCities(ctx, query)
		return []ports.Field{ports.F("results", len(options))}, err
	})
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (d *WeatherClientLoggingDecorator) GetForecast(ctx context.Context, coord string, days int) (*ports.Forecast, error) {
	var fc *ports.Forecast
	err := d.observe(EndpointForecast, []ports.Field{ports.F("coord", coord), ports.F("days", days)}, func() ([]ports.Field, error) {
		var err error
		fc, err = d.client.GetForecast(ctx, coord, days)
		if err != nil {
			return nil, err
		}
		return []ports.Field{
			ports.F("location", fc.Location.DisplayName()),
			ports.F("forecast_days", len(fc.Days)),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// observe logs a request line, runs call, then logs the outcome with the
// fields call returned
func (d *WeatherClientLoggingDecorator) observe(endpoint string, fields []ports.Field, call func() ([]ports.Field, error)) error {
	base := append([]ports.Field{ports.F("endpoint", endpoint)}, fields...)
	d.logger.Info("Weather API request started", withFields(base, ports.F("event", "request"))...)

	start := time.Now()
	result, err := call()
	elapsed := ports.F("duration_ms", time.Since(start).Milliseconds())

	if err != nil {
		d.logger.Error("Weather API request failed",
			withFields(base, ports.F("event", "error"), elapsed, ports.F("error", err.Error()))...)
		return err
	}

	d.logger.Info("Weather API request completed",
		withFields(base, append([]ports.Field{ports.F("event", "response"), elapsed}, result...)...)...)
	return nil
}

func withFields(base []ports.Field, more ...ports.Field) []ports.Field {
	out := make([]ports.Field, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}

var _ ports.WeatherClient = (*WeatherClientLoggingDecorator)(nil)
