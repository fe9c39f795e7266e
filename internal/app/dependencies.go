package app

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"sheetforecast.app/internal/adapters/database"
	"sheetforecast.app/internal/adapters/external"
	"sheetforecast.app/internal/adapters/infrastructure"
	"sheetforecast.app/internal/adapters/sheet"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/internal/core/settings"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/logger"
)

type DependencyContainer struct {
	config *config.Config

	db         *gorm.DB
	redis      *external.RedisSecretStore
	fileLogger *infrastructure.FileLoggerAdapter
	grid       *sheet.WorkbookGrid
	metrics    *infrastructure.PrometheusMetrics
	settings   *settings.UseCase
	health     []ports.HealthChecker

	ports *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	log, err := container.initializeLogger()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	secrets, err := container.initializeSecretStore()
	if err != nil {
		container.Cleanup()
		return nil, fmt.Errorf("initialize secret store: %w", err)
	}

	if err := container.initializePorts(log, secrets); err != nil {
		container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	if path := c.config.Weather.LogFilePath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(path, logger.ParseLevel(c.config.LogLevel))
		if err != nil {
			return nil, err
		}
		c.fileLogger = fileLogger
		log = infrastructure.MultiLogger{log, fileLogger}
		slog.Info("File logging enabled", "path", path)
	}
	return log, nil
}

func (c *DependencyContainer) initializeSecretStore() (ports.SecretStore, error) {
	storeCfg := c.config.Store
	slog.Info("Initializing secret store...", "type", storeCfg.Type.String())

	switch storeCfg.Type {
	case config.StoreTypeMemory:
		return database.NewMemorySecretStore(), nil
	case config.StoreTypeSQLite, config.StoreTypePostgres:
		db, err := database.Open(storeCfg)
		if err != nil {
			return nil, err
		}
		c.db = db
		c.health = append(c.health, infrastructure.NewDatabaseHealthChecker(db))
		return database.NewSecretStoreAdapter(db), nil
	case config.StoreTypeRedis:
		store, err := external.NewRedisSecretStore(&storeCfg.Redis)
		if err != nil {
			return nil, err
		}
		c.redis = store
		c.health = append(c.health, infrastructure.NewPingHealthChecker("redis", store))
		slog.Info("Redis secret store connected", "redis_addr", storeCfg.Redis.Addr)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported secret store type %s", storeCfg.Type)
	}
}

func (c *DependencyContainer) initializePorts(log ports.Logger, secrets ports.SecretStore) error {
	slog.Info("Initializing ports...")

	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Store:  secrets,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("create settings use case: %w", err)
	}
	if err := settingsUseCase.SeedAPIKey(context.Background(), c.config.Weather.APIKey); err != nil {
		return fmt.Errorf("seed API key: %w", err)
	}
	c.settings = settingsUseCase

	c.metrics = infrastructure.NewPrometheusMetrics()

	apiClient, err := external.NewWeatherAPIClient(external.WeatherAPIClientParams{
		BaseURL: c.config.Weather.BaseURL,
		Keys:    settingsUseCase,
		Timeout: c.config.Weather.HTTPTimeout(),
		Logger:  log,
		Metrics: c.metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather client: %w", err)
	}

	var weatherClient ports.WeatherClient = external.NewRateLimitedWeatherClient(apiClient,
		c.config.Weather.RateLimitRPS, c.config.Weather.RateLimitBurst)

	if c.config.Weather.EnableLogging {
		weatherClient = external.NewWeatherClientLoggingDecorator(weatherClient, log)
		slog.Info("Weather client logging enabled")
	}

	grid, err := sheet.NewWorkbookGrid(sheet.WorkbookGridParams{
		Path:       c.config.Report.WorkbookPath,
		SheetName:  c.config.Report.SheetName,
		AnchorCell: c.config.Report.AnchorCell,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	c.grid = grid

	c.health = append(c.health,
		infrastructure.NewAPIKeyHealthChecker(settingsUseCase),
		infrastructure.NewWorkbookHealthChecker(grid.Path()),
	)

	c.ports = &ports.ApplicationPorts{
		Weather: weatherClient,
		Secrets: secrets,
		Grid:    grid,
		Clock:   infrastructure.SystemClock{},
		Metrics: c.metrics,
		Logger:  log,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Settings() *settings.UseCase {
	return c.settings
}

func (c *DependencyContainer) Workbook() *sheet.WorkbookGrid {
	return c.grid
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

// HealthCheckers returns the checkers for every backend that was wired
func (c *DependencyContainer) HealthCheckers() []ports.HealthChecker {
	return c.health
}

// Cleanup releases every opened resource; it is safe after a partial init
func (c *DependencyContainer) Cleanup() {
	if c.grid != nil {
		if err := c.grid.Close(); err != nil {
			slog.Warn("Error closing workbook", "error", err)
		}
	}
	if c.db != nil {
		if err := database.Close(c.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			slog.Warn("Error closing redis", "error", err)
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing log file", "error", err)
		}
	}
}
