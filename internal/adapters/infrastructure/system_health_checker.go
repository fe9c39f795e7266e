package infrastructure

import (
	"context"

	"sheetforecast.app/internal/ports"
)

// SystemHealthChecker aggregates component health checks keyed by component name
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker; nil checkers are skipped
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	s := &SystemHealthChecker{}
	for _, c := range checkers {
		if c != nil {
			s.checkers = append(s.checkers, c)
		}
	}
	return s
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, c := range s.checkers {
		status := c.Check(ctx)
		results[status.Component] = status
	}
	return results
}

// Overall folds component statuses into one: any unhealthy wins, then degraded
func Overall(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded:
			overall = StatusDegraded
		}
	}
	return overall
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
