package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"sheetforecast.app/internal/core/forecast"
	"sheetforecast.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// StatusFor maps an error to its HTTP status and the message shown to the user
func StatusFor(err error) (int, string) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errors.ValidationError, errors.InvalidDateError:
		return http.StatusBadRequest, appErr.Message
	case errors.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errors.ExternalAPIError:
		return http.StatusBadGateway, appErr.Message
	case errors.ConfigurationError:
		return http.StatusPreconditionFailed, appErr.Message
	case errors.BridgeUnavailableError:
		return http.StatusServiceUnavailable, appErr.Message
	case errors.GridError:
		return http.StatusInternalServerError, "Failed to write to the sheet"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// handleError writes the JSON error body for err
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status, message := StatusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: message, Type: errors.TypeOf(err).String()})
}

// bindingError turns a gin binding failure into the matching AppError
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "isodate":
			return errors.NewInvalidDateError(forecast.InvalidStartDateMessage)
		case "coord":
			return errors.NewValidationError("City coordinate must look like lat,lon")
		}
	}
	return errors.NewValidationError("Invalid request format")
}
