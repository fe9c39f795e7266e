package ports

import "context"

// CityOption is one autocomplete suggestion; Value encodes "lat,lon"
type CityOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Location describes the place a forecast was resolved to
type Location struct {
	Name    string
	Region  string
	Country string
}

// DisplayName renders "<name>, <region or country>", omitting empty parts
func (l Location) DisplayName() string {
	part := l.Region
	if part == "" {
		part = l.Country
	}
	if part == "" {
		return l.Name
	}
	return l.Name + ", " + part
}

// ForecastDay holds one provider day. Nil fields were absent or null in the payload.
type ForecastDay struct {
	Date          string
	Condition     *string
	MinTempC      *float64
	MaxTempC      *float64
	AvgTempC      *float64
	MaxWindKph    *float64
	TotalPrecipMm *float64
}

// Forecast is the decoded forecast payload
type Forecast struct {
	Location Location
	Days     []ForecastDay
}

// Filters selects optional column groups. A nil field counts as enabled.
type Filters struct {
	Temp      *bool `json:"temp,omitempty"`
	Wind      *bool `json:"wind,omitempty"`
	Condition *bool `json:"condition,omitempty"`
}

func (f Filters) ShowTemp() bool { return enabled(f.Temp) }
func (f Filters) ShowWind() bool { return enabled(f.Wind) }
func (f Filters) ShowCondition() bool { return enabled(f.Condition) }

func enabled(b *bool) bool {
	return b == nil || *b
}

// AllFilters returns filters with every group explicitly enabled
func AllFilters() Filters {
	t, w, c := true, true, true
	return Filters{Temp: &t, Wind: &w, Condition: &c}
}

// ReportRequest is built fresh for every generate action
type ReportRequest struct {
	CityCoord string  `json:"cityCoord"`
	StartDate string  `json:"startDate"`
	Days      int     `json:"days"`
	Filters   Filters `json:"filters"`
}

// CityLookup resolves a free-text query to city options
type CityLookup interface {
	SearchCities(ctx context.Context, query string) ([]CityOption, error)
}

// ForecastProvider fetches a multi-day forecast for a "lat,lon" coordinate
type ForecastProvider interface {
	GetForecast(ctx context.Context, coord string, days int) (*Forecast, error)
}

// WeatherClient is the full provider surface used by the host service
type WeatherClient interface {
	CityLookup
	ForecastProvider
}
