package sidebar

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"sheetforecast.app/internal/core/forecast"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
	"sheetforecast.app/pkg/validation"
)

const (
	MinDays = 1
	MaxDays = forecast.MaxForecastDays

	SelectCityMessage = "Please select a city"
	SelectDateMessage = "Please select a start date"
)

// ErrBridgeUnavailable is returned when the form is built without a host bridge
var ErrBridgeUnavailable = errors.NewBridgeUnavailableError("host bridge unavailable: generateWeatherReport cannot be called")

// ErrGenerationInProgress rejects a second submit while one is in flight
var ErrGenerationInProgress = errors.NewValidationError("Report generation already in progress")

// FilterGroup names one optional column group
type FilterGroup string

const (
	FilterTemp      FilterGroup = "temp"
	FilterWind      FilterGroup = "wind"
	FilterCondition FilterGroup = "condition"
)

// FormState is a snapshot of the sidebar form
type FormState struct {
	City      *ports.CityOption
	StartDate string
	MinDate   string
	MaxDate   string
	Days      int
	Temp      bool
	Wind      bool
	Condition bool
	Loading   bool
	Error     string
	Last      *ports.ReportSummary
}

type Dependencies struct {
	Bridge   ports.HostBridge
	Clock    ports.Clock
	Location *time.Location
	Logger   ports.Logger
}

// Form holds the report inputs and submits them through the host bridge
type Form struct {
	bridge   ports.HostBridge
	clock    ports.Clock
	location *time.Location
	logger   ports.Logger

	mu    sync.Mutex
	state FormState
}

func NewForm(deps Dependencies) (*Form, error) {
	if deps.Bridge == nil {
		return nil, ErrBridgeUnavailable
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}

	f := &Form{
		bridge:   deps.Bridge,
		clock:    deps.Clock,
		location: loc,
		logger:   deps.Logger,
		state: FormState{
			Days:      MinDays,
			Temp:      true,
			Wind:      true,
			Condition: true,
		},
	}
	f.state.StartDate, _ = f.DateBounds()
	return f, nil
}

// DateBounds returns the selectable start date range, today through today+2
func (f *Form) DateBounds() (minISO, maxISO string) {
	now := f.clock.Now().In(f.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.Format(validation.ISODateLayout),
		today.AddDate(0, 0, MaxDays-1).Format(validation.ISODateLayout)
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.state
	s.MinDate, s.MaxDate = f.DateBounds()
	if s.City != nil {
		c := *s.City
		s.City = &c
	}
	return s
}

func (f *Form) SelectCity(opt ports.CityOption) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := opt
	f.state.City = &c
}

func (f *Form) ClearCity() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.City = nil
}

// SetStartDate accepts an ISO date inside DateBounds. Empty clears the date.
func (f *Form) SetStartDate(iso string) error {
	iso = strings.TrimSpace(iso)

	f.mu.Lock()
	defer f.mu.Unlock()

	if iso == "" {
		f.state.StartDate = ""
		return nil
	}
	if !validation.IsISODate(iso) {
		return errors.NewInvalidDateError("Invalid start date format (expected yyyy-mm-dd)")
	}
	minISO, maxISO := f.DateBounds()
	// ISO dates compare lexically
	if iso < minISO || iso > maxISO {
		return errors.NewInvalidDateError("Start date must be between " + minISO + " and " + maxISO)
	}
	f.state.StartDate = iso
	return nil
}

// SetDays applies the days input rules: empty means 1, values clamp to 1..3,
// and non-numeric input is ignored. It reports whether the input was accepted.
func (f *Form) SetDays(raw string) bool {
	raw = strings.TrimSpace(raw)

	f.mu.Lock()
	defer f.mu.Unlock()

	if raw == "" {
		f.state.Days = MinDays
		return true
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) {
		return false
	}
	switch {
	case n < MinDays:
		f.state.Days = MinDays
	case n > MaxDays:
		f.state.Days = MaxDays
	default:
		f.state.Days = int(n)
	}
	return true
}

func (f *Form) SetFilter(group FilterGroup, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch group {
	case FilterTemp:
		f.state.Temp = on
	case FilterWind:
		f.state.Wind = on
	case FilterCondition:
		f.state.Condition = on
	default:
		return errors.NewValidationError("unknown filter: " + string(group))
	}
	return nil
}

// ToggleFilter flips group and returns its new value
func (f *Form) ToggleFilter(group FilterGroup) (bool, error) {
	f.mu.Lock()
	var current bool
	switch group {
	case FilterTemp:
		current = f.state.Temp
	case FilterWind:
		current = f.state.Wind
	case FilterCondition:
		current = f.state.Condition
	default:
		f.mu.Unlock()
		return false, errors.NewValidationError("unknown filter: " + string(group))
	}
	f.mu.Unlock()

	return !current, f.SetFilter(group, !current)
}

// Request builds the report request from the current state
func (f *Form) Request() (ports.ReportRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requestLocked()
}

func (f *Form) requestLocked() (ports.ReportRequest, error) {
	if f.state.City == nil {
		return ports.ReportRequest{}, errors.NewValidationError(SelectCityMessage)
	}
	if f.state.StartDate == "" {
		return ports.ReportRequest{}, errors.NewValidationError(SelectDateMessage)
	}

	temp, wind, cond := f.state.Temp, f.state.Wind, f.state.Condition
	return ports.ReportRequest{
		CityCoord: f.state.City.Value,
		StartDate: f.state.StartDate,
		Days:      f.state.Days,
		Filters:   ports.Filters{Temp: &temp, Wind: &wind, Condition: &cond},
	}, nil
}

// Generate submits the form. Only one submission may be in flight; failures
// are kept as the form's error text and returned.
func (f *Form) Generate(ctx context.Context) (*ports.ReportSummary, error) {
	f.mu.Lock()
	if f.state.Loading {
		f.mu.Unlock()
		return nil, ErrGenerationInProgress
	}
	f.state.Loading = true
	f.state.Error = ""

	req, err := f.requestLocked()
	if err != nil {
		f.state.Loading = false
		f.state.Error = errors.Message(err)
		f.mu.Unlock()
		return nil, err
	}
	f.mu.Unlock()

	f.logger.Debug("Submitting report request",
		ports.F("coord", req.CityCoord),
		ports.F("start", req.StartDate),
		ports.F("days", req.Days))

	summary, err := f.bridge.GenerateWeatherReport(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		f.state.Error = errors.Message(err)
		f.logger.Warn("Report generation failed", ports.F("error", err))
		return nil, err
	}
	f.state.Last = summary
	return summary, nil
}
