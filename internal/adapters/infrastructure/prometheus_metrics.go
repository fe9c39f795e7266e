package infrastructure

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sheetforecast.app/internal/ports"
)

// PrometheusMetrics implements MetricsRecorder and MetricsReporter.
// Counters live in a private registry so several instances can coexist.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	cityLookups    *prometheus.CounterVec
	staleResponses prometheus.Counter
	reports        *prometheus.CounterVec
	apiDuration    *prometheus.HistogramVec

	mu       sync.Mutex
	snapshot ports.MetricsSnapshot
}

func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		cityLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "city_lookups_total",
				Help: "City autocomplete lookups by result",
			},
			[]string{"result"},
		),
		staleResponses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "autocomplete_stale_responses_total",
				Help: "Lookup responses discarded because a newer request was issued",
			},
		),
		reports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Weather report generations by outcome",
			},
			[]string{"outcome"},
		),
		apiDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_api_request_duration_seconds",
				Help:    "WeatherAPI request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "success"},
		),
		snapshot: ports.MetricsSnapshot{
			CityLookups: make(map[string]int64),
			Reports:     make(map[string]int64),
		},
	}

	m.registry.MustRegister(
		m.cityLookups,
		m.staleResponses,
		m.reports,
		m.apiDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *PrometheusMetrics) RecordCityLookup(result string) {
	m.cityLookups.WithLabelValues(result).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.CityLookups[result]++
	m.snapshot.LastUpdated = time.Now()
}

func (m *PrometheusMetrics) RecordStaleResponse() {
	m.staleResponses.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.StaleResponses++
	m.snapshot.LastUpdated = time.Now()
}

func (m *PrometheusMetrics) RecordReport(outcome string) {
	m.reports.WithLabelValues(outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.Reports[outcome]++
	m.snapshot.LastUpdated = time.Now()
}

func (m *PrometheusMetrics) ObserveWeatherAPIRequest(endpoint string, duration time.Duration, success bool) {
	m.apiDuration.WithLabelValues(endpoint, strconv.FormatBool(success)).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.APIRequests++
	if !success {
		m.snapshot.APIFailures++
	}
	m.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the counters
func (m *PrometheusMetrics) Snapshot() ports.MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.snapshot
	out.CityLookups = make(map[string]int64, len(m.snapshot.CityLookups))
	for k, v := range m.snapshot.CityLookups {
		out.CityLookups[k] = v
	}
	out.Reports = make(map[string]int64, len(m.snapshot.Reports))
	for k, v := range m.snapshot.Reports {
		out.Reports[k] = v
	}
	return out
}

// Registry exposes the underlying registry for tests and custom collectors
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

var (
	_ ports.MetricsRecorder = (*PrometheusMetrics)(nil)
	_ ports.MetricsReporter = (*PrometheusMetrics)(nil)
)
