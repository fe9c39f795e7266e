package ports

import "context"

// WeatherAPIKeyName is the secret holding the provider key
const WeatherAPIKeyName = "WEATHER_API_KEY"

// SecretStore persists named string secrets.
// Get returns a NotFound AppError when the name is unset.
type SecretStore interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// APIKeySource hands the provider adapter the current API key
type APIKeySource interface {
	APIKey(ctx context.Context) (string, error)
}
