package infrastructure

import (
	"context"
	"os"
	"path/filepath"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// Pinger is satisfied by stores that can probe their backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker reports a component healthy when Ping succeeds
type PingHealthChecker struct {
	component string
	pinger    Pinger
}

func NewPingHealthChecker(component string, pinger Pinger) *PingHealthChecker {
	return &PingHealthChecker{component: component, pinger: pinger}
}

func (p *PingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: p.component, Status: StatusHealthy}
	if err := p.pinger.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// APIKeyHealthChecker reports whether the WeatherAPI key has been stored
type APIKeyHealthChecker struct {
	keys ports.APIKeySource
}

func NewAPIKeyHealthChecker(keys ports.APIKeySource) *APIKeyHealthChecker {
	return &APIKeyHealthChecker{keys: keys}
}

func (a *APIKeyHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    StatusHealthy,
		Details:   map[string]interface{}{"keyConfigured": true},
	}

	if _, err := a.keys.APIKey(ctx); err != nil {
		status.Details["keyConfigured"] = false
		status.Error = errors.Message(err)
		status.Status = StatusDegraded
		if !errors.IsConfigurationError(err) {
			status.Status = StatusUnhealthy
		}
	}
	return status
}

// WorkbookHealthChecker reports whether the workbook directory is usable
type WorkbookHealthChecker struct {
	path string
}

func NewWorkbookHealthChecker(path string) *WorkbookHealthChecker {
	return &WorkbookHealthChecker{path: path}
}

func (w *WorkbookHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "workbook",
		Status:    StatusHealthy,
		Details:   map[string]interface{}{"path": w.path},
	}

	info, err := os.Stat(w.path)
	switch {
	case err == nil:
		status.Details["exists"] = true
		status.Details["sizeBytes"] = info.Size()
	case os.IsNotExist(err):
		status.Details["exists"] = false
		if _, dirErr := os.Stat(filepath.Dir(w.path)); dirErr != nil && !os.IsNotExist(dirErr) {
			status.Status = StatusUnhealthy
			status.Error = dirErr.Error()
		}
	default:
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}
