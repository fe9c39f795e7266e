package report

import (
	"strings"

	"sheetforecast.app/internal/core/forecast"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

const (
	OutOfRangeMessage = "Selected start date is beyond available forecast range (max 3 days from today)."
	EmptyMessage      = "No data for selected range."

	// HeaderBackground shades the header row
	HeaderBackground = "#e8eef7"

	// ClearRows covers the title, the header and the longest possible body
	ClearRows = 2 + forecast.MaxForecastDays
	ClearCols = forecast.MaxColumns
)

// OutcomeKind tells the UI what was written to the grid
type OutcomeKind string

const (
	OutcomeWritten    OutcomeKind = "written"
	OutcomeEmpty      OutcomeKind = "empty"
	OutcomeOutOfRange OutcomeKind = "out_of_range"
)

// Outcome describes a completed generate call
type Outcome struct {
	ReportID string
	Kind     OutcomeKind
	Anchor   ports.CellRef
	Title    string
	Header   []string
	Rows     int
	Message  string
}

// Summary converts the outcome to the bridge response
func (o *Outcome) Summary() *ports.ReportSummary {
	return &ports.ReportSummary{
		ReportID: o.ReportID,
		Outcome:  string(o.Kind),
		Title:    o.Title,
		Header:   o.Header,
		Rows:     o.Rows,
		Message:  o.Message,
	}
}

// ValidateRequest checks the request before any network or grid call
func ValidateRequest(req ports.ReportRequest) error {
	if strings.TrimSpace(req.CityCoord) == "" {
		return errors.NewValidationError("City is required")
	}
	if strings.TrimSpace(req.StartDate) == "" {
		return errors.NewValidationError("No start date.")
	}
	if req.Days < 1 {
		return errors.NewValidationError("Days must be >= 1")
	}
	if req.Days > forecast.MaxRequestedDays {
		return errors.NewValidationError(forecast.TooManyDaysMessage)
	}
	return nil
}
