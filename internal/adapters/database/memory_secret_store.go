package database

import (
	"context"
	"sync"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// MemorySecretStore keeps secrets in process memory. Values are lost on restart.
type MemorySecretStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

func NewMemorySecretStore() *MemorySecretStore {
	return &MemorySecretStore{secrets: make(map[string]string)}
}

func (m *MemorySecretStore) Get(_ context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.NewValidationError("secret name cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.secrets[name]
	if !ok {
		return "", errors.NewNotFoundError("secret " + name + " is not set")
	}
	return value, nil
}

func (m *MemorySecretStore) Set(_ context.Context, name, value string) error {
	if name == "" {
		return errors.NewValidationError("secret name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.secrets[name] = value
	return nil
}

var _ ports.SecretStore = (*MemorySecretStore)(nil)
