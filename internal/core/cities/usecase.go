package cities

import (
	"context"
	"fmt"
	"strings"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// MinQueryLength is the shortest trimmed query forwarded to the provider
const MinQueryLength = 2

const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

type UseCase struct {
	lookup  ports.CityLookup
	logger  ports.Logger
	metrics ports.MetricsRecorder
}

type UseCaseDependencies struct {
	Lookup  ports.CityLookup
	Logger  ports.Logger
	Metrics ports.MetricsRecorder
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Lookup == nil {
		return nil, errors.NewValidationError("city lookup is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		lookup:  deps.Lookup,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Search returns city options for query. Queries shorter than two
// characters after trimming return an empty list without a provider call.
func (uc *UseCase) Search(ctx context.Context, query string) ([]ports.CityOption, error) {
	if len([]rune(strings.TrimSpace(query))) < MinQueryLength {
		uc.metrics.RecordCityLookup(ResultSkipped)
		return []ports.CityOption{}, nil
	}

	options, err := uc.lookup.SearchCities(ctx, query)
	if err != nil {
		uc.metrics.RecordCityLookup(ResultError)
		uc.logger.Error("City search failed",
			ports.F("query", query),
			ports.F("error", err))
		return nil, fmt.Errorf("search cities %q: %w", query, err)
	}

	uc.metrics.RecordCityLookup(ResultOK)
	uc.logger.Debug("City search completed",
		ports.F("query", query),
		ports.F("results", len(options)))

	if options == nil {
		options = []ports.CityOption{}
	}
	return options, nil
}
