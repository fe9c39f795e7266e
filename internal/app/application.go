package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"sheetforecast.app/internal/adapters/api"
	"sheetforecast.app/internal/adapters/bridge"
	"sheetforecast.app/internal/adapters/infrastructure"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/internal/core/cities"
	"sheetforecast.app/internal/core/report"
	"sheetforecast.app/internal/core/settings"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	citiesUseCase *cities.UseCase
	reportUseCase *report.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	closeOnce sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the host service from an already loaded config
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
	}

	if err := app.initializeUseCases(); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")
	p := a.deps.ApplicationPorts()

	citiesUseCase, err := cities.NewUseCase(cities.UseCaseDependencies{
		Lookup:  p.Weather,
		Logger:  p.Logger,
		Metrics: p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create cities use case: %w", err)
	}
	a.citiesUseCase = citiesUseCase

	loc, err := a.config.Report.Location()
	if err != nil {
		return fmt.Errorf("resolve report time zone: %w", err)
	}

	reportUseCase, err := report.NewUseCase(report.UseCaseDependencies{
		Weather:  p.Weather,
		Grid:     p.Grid,
		Clock:    p.Clock,
		Location: loc,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create report use case: %w", err)
	}
	a.reportUseCase = reportUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metrics := a.deps.Metrics()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Cities:         a.citiesUseCase,
		Reports:        a.reportUseCase,
		Settings:       a.deps.Settings(),
		Workbook:       a.deps.Workbook(),
		Metrics:        metrics,
		MetricsHandler: metrics.Handler(),
		Health:         infrastructure.NewSystemHealthChecker(a.deps.HealthCheckers()...),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.Close()

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Close releases the workbook, stores and log files without touching the HTTP server
func (a *Application) Close() {
	a.closeOnce.Do(a.deps.Cleanup)
}

// Bridge returns an in-process host bridge over this application's use cases
func (a *Application) Bridge() (*bridge.DirectBridge, error) {
	return bridge.NewDirectBridge(a.citiesUseCase, a.reportUseCase)
}

// Settings returns the key storage use case
func (a *Application) Settings() *settings.UseCase {
	return a.deps.Settings()
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
