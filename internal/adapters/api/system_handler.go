package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"sheetforecast.app/internal/adapters/infrastructure"
	"sheetforecast.app/internal/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HealthResponse represents the aggregated health report
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())
	overall := infrastructure.Overall(results)

	status := http.StatusOK
	if overall == infrastructure.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, HealthResponse{Status: overall, Components: results})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}

// downloadWorkbook handles GET /api/workbook requests
func (s *HTTPServerAdapter) downloadWorkbook(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := s.workbook.WriteTo(&buf); err != nil {
		s.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(s.workbook.Path())))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
