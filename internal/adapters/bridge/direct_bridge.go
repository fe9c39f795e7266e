package bridge

import (
	"context"

	"sheetforecast.app/internal/core/report"
	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

type CitySearcher interface {
	Search(ctx context.Context, query string) ([]ports.CityOption, error)
}

type ReportGenerator interface {
	Generate(ctx context.Context, req ports.ReportRequest) (*report.Outcome, error)
}

// DirectBridge calls the host use cases in-process
type DirectBridge struct {
	cities  CitySearcher
	reports ReportGenerator
}

func NewDirectBridge(cities CitySearcher, reports ReportGenerator) (*DirectBridge, error) {
	if cities == nil || reports == nil {
		return nil, errors.NewBridgeUnavailableError("host use cases are not available")
	}
	return &DirectBridge{cities: cities, reports: reports}, nil
}

func (b *DirectBridge) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	return b.cities.Search(ctx, query)
}

func (b *DirectBridge) GenerateWeatherReport(ctx context.Context, req ports.ReportRequest) (*ports.ReportSummary, error) {
	outcome, err := b.reports.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return outcome.Summary(), nil
}

var _ ports.HostBridge = (*DirectBridge)(nil)
