package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"sheetforecast.app/internal/ports"
)

// ReportRequest represents the HTTP request for generating a report
type ReportRequest struct {
	CityCoord string        `json:"cityCoord" binding:"coord"`
	StartDate string        `json:"startDate" binding:"isodate"`
	Days      int           `json:"days"`
	Filters   ports.Filters `json:"filters"`
}

// generateReport handles POST /api/reports requests
func (s *HTTPServerAdapter) generateReport(c *gin.Context) {
	var httpReq ReportRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, bindingError(err))
		return
	}

	outcome, err := s.reports.Generate(c.Request.Context(), ports.ReportRequest{
		CityCoord: httpReq.CityCoord,
		StartDate: httpReq.StartDate,
		Days:      httpReq.Days,
		Filters:   httpReq.Filters,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome.Summary())
}
