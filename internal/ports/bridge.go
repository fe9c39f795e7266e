package ports

import "context"

// ReportSummary is returned to the UI after a generate call
type ReportSummary struct {
	ReportID string   `json:"reportId"`
	Outcome  string   `json:"outcome"`
	Title    string   `json:"title,omitempty"`
	Header   []string `json:"header,omitempty"`
	Rows     int      `json:"rows"`
	Message  string   `json:"message,omitempty"`
}

// HostBridge is the UI-to-host boundary. Implementations may call over HTTP or in-process.
type HostBridge interface {
	SearchCities(ctx context.Context, query string) ([]CityOption, error)
	GenerateWeatherReport(ctx context.Context, req ReportRequest) (*ReportSummary, error)
}
