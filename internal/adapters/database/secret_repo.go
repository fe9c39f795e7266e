package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// SettingModel represents the database model for named secrets
type SettingModel struct {
	Name      string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}

// SecretStoreAdapter implements the SecretStore port using GORM
type SecretStoreAdapter struct {
	db *gorm.DB
}

// NewSecretStoreAdapter creates a new secret store adapter
func NewSecretStoreAdapter(db *gorm.DB) *SecretStoreAdapter {
	return &SecretStoreAdapter{db: db}
}

// Get retrieves a secret value by name
func (r *SecretStoreAdapter) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", errors.NewValidationError("secret name cannot be empty")
	}

	var model SettingModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return "", errors.NewNotFoundError("secret " + name + " is not set")
		}
		return "", errors.NewDatabaseError("failed to read secret", result.Error)
	}

	return model.Value, nil
}

// Set inserts or replaces a secret value
func (r *SecretStoreAdapter) Set(ctx context.Context, name, value string) error {
	if name == "" {
		return errors.NewValidationError("secret name cannot be empty")
	}

	model := &SettingModel{Name: name, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save secret", result.Error)
	}

	return nil
}

// Ping checks the database connection
func (r *SecretStoreAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

var _ ports.SecretStore = (*SecretStoreAdapter)(nil)
