package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"sheetforecast.app/internal/ports"
)

func TestWeatherClientLoggingDecorator_SearchCities(t *testing.T) {
	client := &testWeatherClient{
		options: []ports.CityOption{{Label: "Paris, Ile-de-France", Value: "48.87,2.33"}},
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	result, err := decorator.SearchCities(context.Background(), "Par")

	assert.NoError(t, err)
	assert.Len(t, result, 1)

	assert.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "search", requestLog.fields["endpoint"])
	assert.Equal(t, "Par", requestLog.fields["query"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 1, responseLog.fields["results"])
	assert.Contains(t, responseLog.fields, "duration_ms")
}

func TestWeatherClientLoggingDecorator_GetForecast(t *testing.T) {
	client := &testWeatherClient{
		forecast: &ports.Forecast{
			Location: ports.Location{Name: "Oslo", Country: "Norway"},
			Days:     []ports.ForecastDay{{Date: "2024-01-01"}, {Date: "2024-01-02"}},
		},
		delay: 10 * time.Millisecond,
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	result, err := decorator.GetForecast(context.Background(), "59.91,10.75", 2)

	assert.NoError(t, err)
	assert.NotNil(t, result)

	assert.Equal(t, 2, len(testLogger.entries))
	responseLog := testLogger.entries[1]
	assert.Equal(t, "forecast", responseLog.fields["endpoint"])
	assert.Equal(t, "Oslo, Norway", responseLog.fields["location"])
	assert.Equal(t, 2, responseLog.fields["forecast_days"])

	duration, ok := responseLog.fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

func TestWeatherClientLoggingDecorator_ErrorHandling(t *testing.T) {
	client := &testWeatherClient{err: errors.New("API rate limit exceeded")}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	result, err := decorator.GetForecast(context.Background(), "1,2", 1)

	assert.Error(t, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	assert.Nil(t, result)

	assert.Equal(t, 2, len(testLogger.entries))
	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "1,2", errorLog.fields["coord"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

// Test helper structs
type testWeatherClient struct {
	options  []ports.CityOption
	forecast *ports.Forecast
	err      error
	delay    time.Duration
}

func (c *testWeatherClient) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.options, nil
}

func (c *testWeatherClient) GetForecast(ctx context.Context, coord string, days int) (*ports.Forecast, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.forecast, nil
}

func (c *testWeatherClient) wait(ctx context.Context) error {
	if c.delay == 0 {
		return nil
	}
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func BenchmarkWeatherClientLoggingDecorator(b *testing.B) {
	client := &testWeatherClient{options: []ports.CityOption{{Label: "Bench, Mark", Value: "1,2"}}}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherClientLoggingDecorator(client, testLogger)

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.SearchCities(context.Background(), "Bench")
		}
	})
}
