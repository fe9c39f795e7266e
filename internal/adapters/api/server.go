// Package api provides the HTTP adapter for the host operations
// Handlers translate requests into use case calls and AppErrors into status codes.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"sheetforecast.app/internal/core/report"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// HTTPServerAdapter implements the host API using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	cities         CitySearcher
	reports        ReportGenerator
	settings       KeyStore
	workbook       Workbook
	metrics        ports.MetricsReporter
	metricsHandler http.Handler
	health         ports.SystemHealthChecker
}

// Use case interfaces that the HTTP adapter depends on
type CitySearcher interface {
	Search(ctx context.Context, query string) ([]ports.CityOption, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, req ports.ReportRequest) (*report.Outcome, error)
}

type KeyStore interface {
	SetAPIKey(ctx context.Context, key string) error
}

// Workbook is the grid surface the host exposes for download and cursor moves
type Workbook interface {
	ActiveCell(ctx context.Context) (ports.CellRef, error)
	SetActiveCell(ref ports.CellRef) error
	WriteTo(w io.Writer) (int64, error)
	Path() string
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Cities         CitySearcher
	Reports        ReportGenerator
	Settings       KeyStore
	Workbook       Workbook
	Metrics        ports.MetricsReporter
	MetricsHandler http.Handler
	Health         ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	server := &HTTPServerAdapter{
		router:         gin.Default(),
		cities:         opts.Cities,
		reports:        opts.Reports,
		settings:       opts.Settings,
		workbook:       opts.Workbook,
		metrics:        opts.Metrics,
		metricsHandler: opts.MetricsHandler,
		health:         opts.Health,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Cities == nil {
		return errors.NewValidationError("cities use case is required")
	}
	if opts.Reports == nil {
		return errors.NewValidationError("report use case is required")
	}
	if opts.Settings == nil {
		return errors.NewValidationError("settings use case is required")
	}
	if opts.Workbook == nil {
		return errors.NewValidationError("workbook is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/cities", s.searchCities)
		api.POST("/reports", s.generateReport)
		api.PUT("/settings/api-key", s.setAPIKey)
		api.GET("/grid/active-cell", s.getActiveCell)
		api.PUT("/grid/active-cell", s.setActiveCell)
		api.GET("/workbook", s.downloadWorkbook)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}
}

// GetRouter returns the router
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
