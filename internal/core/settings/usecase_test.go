package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sheetforecast.app/internal/mocks"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

func newUseCase(t *testing.T) (*UseCase, *mocks.SecretStore) {
	t.Helper()

	store := mocks.NewSecretStore(t)
	logger := mocks.NewLogger(t)
	logger.EXPECT().Info(mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{Store: store, Logger: logger})
	require.NoError(t, err)
	return uc, store
}

func TestUseCase_SetAPIKey(t *testing.T) {
	t.Run("StoresTrimmedKey", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Set(mock.Anything, ports.WeatherAPIKeyName, "abc123").Return(nil)

		assert.NoError(t, uc.SetAPIKey(context.Background(), "  abc123 "))
	})

	t.Run("RejectsEmptyKey", func(t *testing.T) {
		uc, _ := newUseCase(t)

		err := uc.SetAPIKey(context.Background(), "   ")

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("PropagatesStoreError", func(t *testing.T) {
		uc, store := newUseCase(t)
		storeErr := errors.NewDatabaseError("write failed", fmt.Errorf("disk full"))
		store.EXPECT().Set(mock.Anything, ports.WeatherAPIKeyName, "abc").Return(storeErr)

		err := uc.SetAPIKey(context.Background(), "abc")

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestUseCase_APIKey(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("abc123", nil)

		key, err := uc.APIKey(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "abc123", key)
	})

	t.Run("MissingIsConfigurationError", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("", errors.NewNotFoundError("not set"))

		_, err := uc.APIKey(context.Background())

		assert.True(t, errors.IsConfigurationError(err))
		assert.Equal(t, MissingAPIKeyMessage, errors.Message(err))
	})

	t.Run("BlankValueIsConfigurationError", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("", nil)

		_, err := uc.APIKey(context.Background())

		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("StoreFailure", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("", errors.NewDatabaseError("read failed", nil))

		_, err := uc.APIKey(context.Background())

		assert.False(t, errors.IsConfigurationError(err))
		assert.Equal(t, errors.ErrorTypeDatabase, errors.TypeOf(err))
	})
}

func TestUseCase_SeedAPIKey(t *testing.T) {
	t.Run("SeedsWhenMissing", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("", errors.NewNotFoundError("not set"))
		store.EXPECT().Set(mock.Anything, ports.WeatherAPIKeyName, "seed").Return(nil)

		assert.NoError(t, uc.SeedAPIKey(context.Background(), "seed"))
	})

	t.Run("KeepsExistingKey", func(t *testing.T) {
		uc, store := newUseCase(t)
		store.EXPECT().Get(mock.Anything, ports.WeatherAPIKeyName).Return("stored", nil)

		assert.NoError(t, uc.SeedAPIKey(context.Background(), "seed"))
	})

	t.Run("EmptySeedIsNoop", func(t *testing.T) {
		uc, _ := newUseCase(t)

		assert.NoError(t, uc.SeedAPIKey(context.Background(), ""))
	})
}
