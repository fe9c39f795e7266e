package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"sheetforecast.app/internal/adapters/sheet"
	"sheetforecast.app/pkg/errors"
)

// APIKeyRequest represents the HTTP request for storing the WeatherAPI key
type APIKeyRequest struct {
	Key string `json:"key"`
}

// CellRequest moves the active cell, in A1 notation
type CellRequest struct {
	Cell string `json:"cell" binding:"required"`
}

// setAPIKey handles PUT /api/settings/api-key requests
func (s *HTTPServerAdapter) setAPIKey(c *gin.Context) {
	var httpReq APIKeyRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.settings.SetAPIKey(c.Request.Context(), httpReq.Key); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "API key saved"})
}

// getActiveCell handles GET /api/grid/active-cell requests
func (s *HTTPServerAdapter) getActiveCell(c *gin.Context) {
	ref, err := s.workbook.ActiveCell(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, CellRequest{Cell: sheet.CellName(ref)})
}

// setActiveCell handles PUT /api/grid/active-cell requests
func (s *HTTPServerAdapter) setActiveCell(c *gin.Context) {
	var httpReq CellRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		s.handleError(c, errors.NewValidationError("cell is required"))
		return
	}

	ref, err := sheet.ParseCell(httpReq.Cell)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if err := s.workbook.SetActiveCell(ref); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CellRequest{Cell: sheet.CellName(ref)})
}
