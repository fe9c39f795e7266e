package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"sheetforecast.app/internal/core/forecast"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

const (
	metricInvalid = "invalid"
	metricFailed  = "failed"
)

type UseCase struct {
	weather  ports.ForecastProvider
	grid     ports.Grid
	clock    ports.Clock
	location *time.Location
	logger   ports.Logger
	metrics  ports.MetricsRecorder

	// one report writes to the grid at a time
	writeMu sync.Mutex
}

type UseCaseDependencies struct {
	Weather  ports.ForecastProvider
	Grid     ports.Grid
	Clock    ports.Clock
	Location *time.Location
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Grid == nil {
		return nil, errors.NewValidationError("grid is required")
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	return &UseCase{
		weather:  deps.Weather,
		grid:     deps.Grid,
		clock:    deps.Clock,
		location: loc,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Generate validates req, fetches the forecast and writes the report at the active cell
func (uc *UseCase) Generate(ctx context.Context, req ports.ReportRequest) (*Outcome, error) {
	if err := ValidateRequest(req); err != nil {
		uc.metrics.RecordReport(metricInvalid)
		return nil, err
	}

	todayISO := forecast.TodayISO(uc.clock.Now(), uc.location)
	window, err := forecast.ComputeWindow(req.StartDate, req.Days, todayISO, forecast.MaxForecastDays)
	if err != nil {
		uc.metrics.RecordReport(metricInvalid)
		return nil, err
	}

	reportID := uuid.New().String()
	uc.logger.Info("Generating weather report",
		ports.F("report_id", reportID),
		ports.F("coord", req.CityCoord),
		ports.F("start", window.EffectiveStartISO),
		ports.F("days", req.Days))

	if window.OutOfRange {
		outcome, err := uc.writeOutOfRange(ctx, reportID)
		if err != nil {
			uc.metrics.RecordReport(metricFailed)
			return nil, err
		}
		uc.metrics.RecordReport(string(outcome.Kind))
		return outcome, nil
	}

	fc, err := uc.weather.GetForecast(ctx, req.CityCoord, window.FetchDays)
	if err != nil {
		uc.metrics.RecordReport(metricFailed)
		uc.logger.Error("Forecast request failed",
			ports.F("report_id", reportID),
			ports.F("error", err))
		return nil, err
	}

	assembled := forecast.Assemble(fc.Days, window.WantedDates, req.Filters)
	title := forecast.Title(fc.Location.DisplayName(), window.EffectiveStartISO, req.Days)

	outcome, err := uc.writeReport(ctx, reportID, title, assembled)
	if err != nil {
		uc.metrics.RecordReport(metricFailed)
		uc.logger.Error("Failed to write report",
			ports.F("report_id", reportID),
			ports.F("error", err))
		return nil, err
	}

	uc.metrics.RecordReport(string(outcome.Kind))
	uc.logger.Info("Weather report written",
		ports.F("report_id", reportID),
		ports.F("outcome", outcome.Kind),
		ports.F("rows", outcome.Rows))
	return outcome, nil
}

func (uc *UseCase) writeOutOfRange(ctx context.Context, reportID string) (*Outcome, error) {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	anchor, err := uc.grid.ActiveCell(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active cell: %w", err)
	}
	if err := uc.grid.SetValue(ctx, anchor, OutOfRangeMessage); err != nil {
		return nil, fmt.Errorf("write out of range message: %w", err)
	}
	if err := uc.grid.Flush(ctx); err != nil {
		return nil, fmt.Errorf("flush grid: %w", err)
	}

	uc.logger.Info("Start date beyond forecast range", ports.F("report_id", reportID))
	return &Outcome{
		ReportID: reportID,
		Kind:     OutcomeOutOfRange,
		Anchor:   anchor,
		Message:  OutOfRangeMessage,
	}, nil
}

func (uc *UseCase) writeReport(ctx context.Context, reportID, title string, r forecast.Report) (*Outcome, error) {
	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	anchor, err := uc.grid.ActiveCell(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active cell: %w", err)
	}

	width := len(r.Header)
	titleCell := anchor
	headerCell := ports.CellRef{Row: anchor.Row + 1, Col: anchor.Col}
	bodyCell := ports.CellRef{Row: anchor.Row + 2, Col: anchor.Col}

	if err := uc.grid.ClearRange(ctx, ports.Range{Origin: anchor, Rows: ClearRows, Cols: ClearCols}); err != nil {
		return nil, fmt.Errorf("clear report area: %w", err)
	}

	titleRow := make([]any, width)
	titleRow[0] = title
	for i := 1; i < width; i++ {
		titleRow[i] = ""
	}
	titleRange := ports.Range{Origin: titleCell, Rows: 1, Cols: width}
	if err := uc.grid.SetValues(ctx, titleCell, [][]any{titleRow}); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := uc.grid.Merge(ctx, titleRange); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	if err := uc.grid.Format(ctx, titleRange, ports.CellStyle{Bold: true}); err != nil {
		return nil, fmt.Errorf("format title: %w", err)
	}

	headerRow := make([]any, width)
	for i, h := range r.Header {
		headerRow[i] = h
	}
	headerRange := ports.Range{Origin: headerCell, Rows: 1, Cols: width}
	if err := uc.grid.SetValues(ctx, headerCell, [][]any{headerRow}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := uc.grid.Format(ctx, headerRange, ports.CellStyle{Bold: true, Background: HeaderBackground}); err != nil {
		return nil, fmt.Errorf("format header: %w", err)
	}

	outcome := &Outcome{
		ReportID: reportID,
		Anchor:   anchor,
		Title:    title,
		Header:   r.Header,
		Rows:     len(r.Rows),
	}

	if r.IsEmpty() {
		if err := uc.grid.SetValue(ctx, bodyCell, EmptyMessage); err != nil {
			return nil, fmt.Errorf("write empty message: %w", err)
		}
		outcome.Kind = OutcomeEmpty
		outcome.Message = EmptyMessage
	} else {
		if err := uc.grid.SetValues(ctx, bodyCell, r.Rows); err != nil {
			return nil, fmt.Errorf("write rows: %w", err)
		}
		if err := uc.grid.AutoResizeColumns(ctx, anchor.Col, width); err != nil {
			return nil, fmt.Errorf("resize columns: %w", err)
		}
		outcome.Kind = OutcomeWritten
	}

	if err := uc.grid.Flush(ctx); err != nil {
		return nil, fmt.Errorf("flush grid: %w", err)
	}
	return outcome, nil
}
