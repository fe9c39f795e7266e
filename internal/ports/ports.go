// Package ports holds the interfaces between the forecast core and its adapters.
// Mocks for them live in internal/mocks.
//
//go:generate mockery
package ports

// ApplicationPorts is the set of adapters the host use cases are built from
type ApplicationPorts struct {
	Weather WeatherClient
	Secrets SecretStore
	Grid    Grid
	Clock   Clock
	Metrics MetricsRecorder
	Logger  Logger
}
