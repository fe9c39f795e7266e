package settings

import (
	"context"
	"strings"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// MissingAPIKeyMessage is surfaced to the UI when no key has been stored
const MissingAPIKeyMessage = "Missing WEATHER_API_KEY. Call setWeatherApiKey(key) once."

// UseCase manages the provider API key in the secret store
type UseCase struct {
	store  ports.SecretStore
	logger ports.Logger
}

type UseCaseDependencies struct {
	Store  ports.SecretStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("secret store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{store: deps.Store, logger: deps.Logger}, nil
}

// SetAPIKey stores key, replacing any previous value
func (uc *UseCase) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.NewValidationError("API key cannot be empty")
	}

	if err := uc.store.Set(ctx, ports.WeatherAPIKeyName, key); err != nil {
		uc.logger.Error("Failed to store API key", ports.F("error", err))
		return err
	}

	uc.logger.Info("Weather API key updated")
	return nil
}

// APIKey returns the stored key or a configuration error when none is set
func (uc *UseCase) APIKey(ctx context.Context) (string, error) {
	key, err := uc.store.Get(ctx, ports.WeatherAPIKeyName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return "", errors.NewConfigurationError(MissingAPIKeyMessage, nil)
		}
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", errors.NewConfigurationError(MissingAPIKeyMessage, nil)
	}
	return key, nil
}

// SeedAPIKey stores key only when the store has none yet
func (uc *UseCase) SeedAPIKey(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	if _, err := uc.APIKey(ctx); err == nil {
		return nil
	} else if !errors.IsConfigurationError(err) {
		return err
	}

	uc.logger.Info("Seeding Weather API key from environment")
	return uc.SetAPIKey(ctx, key)
}
