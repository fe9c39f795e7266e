package forecast

import (
	"time"

	"sheetforecast.app/pkg/errors"
	"sheetforecast.app/pkg/validation"
)

// MaxForecastDays is the provider's forecast horizon, today included
const MaxForecastDays = 3

// MaxRequestedDays bounds the day count a report may ask for
const MaxRequestedDays = 366

const (
	InvalidStartDateMessage = "Invalid start date format (expected yyyy-mm-dd)"
	TooManyDaysMessage      = "Days must be <= 366"
)

// Window is the clamped request window for one report
type Window struct {
	EffectiveStartISO string
	OffsetDays        int
	// FetchDays is how many days to request from the provider, counted from today
	FetchDays int
	// WantedDates always has the requested length even when FetchDays is smaller
	WantedDates []string
	// OutOfRange marks a start date past the horizon. Nothing should be fetched.
	OutOfRange bool
}

// ComputeWindow clamps a requested start date and day count into the provider horizon.
// A start date before today moves forward to today. A start at or past the horizon
// yields an OutOfRange window rather than an error.
func ComputeWindow(requestedStartISO string, requestedDays int, todayISO string, maxForecastDays int) (Window, error) {
	if requestedDays < 1 {
		return Window{}, errors.NewValidationError("Days must be >= 1")
	}
	if requestedDays > MaxRequestedDays {
		return Window{}, errors.NewValidationError(TooManyDaysMessage)
	}
	if maxForecastDays < 1 {
		return Window{}, errors.NewValidationError("max forecast days must be >= 1")
	}

	start, err := time.Parse(validation.ISODateLayout, requestedStartISO)
	if err != nil {
		return Window{}, errors.NewInvalidDateError(InvalidStartDateMessage)
	}
	today, err := time.Parse(validation.ISODateLayout, todayISO)
	if err != nil {
		return Window{}, errors.NewInvalidDateError("Invalid today date format (expected yyyy-mm-dd)")
	}

	if start.Before(today) {
		start = today
	}

	offset := int(start.Sub(today).Hours() / 24)
	if offset < 0 {
		offset = 0
	}

	window := Window{
		EffectiveStartISO: start.Format(validation.ISODateLayout),
		OffsetDays:        offset,
	}
	if offset >= maxForecastDays {
		window.OutOfRange = true
		return window, nil
	}

	// offset < maxForecastDays here, so the subtraction cannot overflow
	if requestedDays >= maxForecastDays-offset {
		window.FetchDays = maxForecastDays
	} else {
		window.FetchDays = clamp(offset+requestedDays, 1, maxForecastDays)
	}
	window.WantedDates = WantedDates(start, requestedDays)
	return window, nil
}

// WantedDates lists n consecutive ISO dates starting at start
func WantedDates(start time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(validation.ISODateLayout))
	}
	return dates
}

// TodayISO formats now as a calendar date in loc
func TodayISO(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(validation.ISODateLayout)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
