package forecast

import (
	"fmt"

	"sheetforecast.app/internal/ports"
)

const (
	ColumnDate        = "Date"
	ColumnCondition   = "Condition"
	ColumnMinTemp     = "Min °C"
	ColumnMaxTemp     = "Max °C"
	ColumnAvgTemp     = "Avg °C"
	ColumnMaxWind     = "Max Wind (kph)"
	ColumnTotalPrecip = "Total Precip (mm)"
)

// MaxColumns is the widest header any filter combination produces
const MaxColumns = 7

// Report is the assembled table. Cells are strings or float64; missing values are "".
type Report struct {
	Header []string
	Rows   [][]any
}

// IsEmpty reports whether no provider day matched the wanted dates
func (r Report) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Header builds the column list for the given filters
func Header(filters ports.Filters) []string {
	header := []string{ColumnDate}
	if filters.ShowCondition() {
		header = append(header, ColumnCondition)
	}
	if filters.ShowTemp() {
		header = append(header, ColumnMinTemp, ColumnMaxTemp, ColumnAvgTemp)
	}
	if filters.ShowWind() {
		header = append(header, ColumnMaxWind)
	}
	// precipitation is shown regardless of filters
	return append(header, ColumnTotalPrecip)
}

// Assemble turns provider days into rows, keeping provider order and
// dropping days whose date is not in wantedDates.
func Assemble(days []ports.ForecastDay, wantedDates []string, filters ports.Filters) Report {
	wanted := make(map[string]struct{}, len(wantedDates))
	for _, d := range wantedDates {
		wanted[d] = struct{}{}
	}

	report := Report{Header: Header(filters), Rows: [][]any{}}
	for _, day := range days {
		if _, ok := wanted[day.Date]; !ok {
			continue
		}

		row := make([]any, 0, len(report.Header))
		row = append(row, day.Date)
		if filters.ShowCondition() {
			row = append(row, text(day.Condition))
		}
		if filters.ShowTemp() {
			row = append(row, number(day.MinTempC), number(day.MaxTempC), number(day.AvgTempC))
		}
		if filters.ShowWind() {
			row = append(row, number(day.MaxWindKph))
		}
		row = append(row, number(day.TotalPrecipMm))

		report.Rows = append(report.Rows, row)
	}

	return report
}

// Title renders the report heading shown above the header row
func Title(cityName, startISO string, days int) string {
	suffix := ""
	if days > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("Weather Forecast: %s (start %s, %d day%s)", cityName, startISO, days, suffix)
}

func text(v *string) any {
	if v == nil {
		return ""
	}
	return *v
}

func number(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
