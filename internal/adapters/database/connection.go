package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/pkg/errors"
)

// Open connects to the SQL backend selected by the store config and runs migrations
func Open(cfg config.StoreConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var dialector gorm.Dialector
	switch cfg.Type {
	case config.StoreTypeSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." && cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.NewDatabaseError("failed to create sqlite directory", err)
			}
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.StoreTypePostgres:
		dialector = postgres.Open(cfg.Database.GetDSN())
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("store type %s is not backed by SQL", cfg.Type), nil)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the settings table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SettingModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate settings table", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
