package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"sheetforecast.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

const databasePingTimeout = 2 * time.Second

// DatabaseHealthChecker pings the SQL backend of the secret store
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Status:    StatusUnhealthy,
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Error = "secret store database is not open"
		return status
	}
	status.Details["dialect"] = d.db.Dialector.Name()

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = "failed to get underlying database connection"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, databasePingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Details["openConnections"] = stats.OpenConnections
	status.Details["inUse"] = stats.InUse
	status.Status = StatusHealthy
	return status
}
