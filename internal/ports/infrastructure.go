package ports

import (
	"context"
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsRecorder defines the contract for domain metrics
type MetricsRecorder interface {
	RecordCityLookup(result string)
	RecordStaleResponse()
	RecordReport(outcome string)
	ObserveWeatherAPIRequest(endpoint string, duration time.Duration, success bool)
}

// MetricsSnapshot is the JSON summary served on /api/metrics
type MetricsSnapshot struct {
	CityLookups    map[string]int64 `json:"cityLookups"`
	StaleResponses int64            `json:"staleResponses"`
	Reports        map[string]int64 `json:"reports"`
	APIRequests    int64            `json:"apiRequests"`
	APIFailures    int64            `json:"apiFailures"`
	LastUpdated    time.Time        `json:"lastUpdated"`
}

// MetricsReporter exposes collected metrics as a snapshot
type MetricsReporter interface {
	Snapshot() MetricsSnapshot
}

// HealthChecker reports the status of one backend
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is one component entry of /api/health
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker runs every registered checker keyed by component
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
