package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// RedisSecretStore implements SecretStore port using Redis.
// Secrets never expire.
type RedisSecretStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSecretStore connects to Redis and verifies the connection
func NewRedisSecretStore(config *config.RedisConfig) (*RedisSecretStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisSecretStore{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

// Get retrieves a secret by name
func (r *RedisSecretStore) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.NewValidationError("secret name cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NewNotFoundError("secret " + name + " is not set")
		}
		return "", errors.NewExternalAPIError("redis get operation failed", err)
	}
	return val, nil
}

// Set stores a secret, replacing any previous value
func (r *RedisSecretStore) Set(ctx context.Context, name, value string) error {
	if name == "" {
		return errors.NewValidationError("secret name cannot be empty")
	}

	if err := r.client.Set(ctx, r.key(name), value, 0).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisSecretStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSecretStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

func (r *RedisSecretStore) key(name string) string {
	return r.prefix + name
}

var _ ports.SecretStore = (*RedisSecretStore)(nil)
