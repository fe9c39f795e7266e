// Package bridge implements the sidebar-to-host boundary
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sheetforecast.app/internal/ports"
	"sheetforecast.app/pkg/errors"
)

// HTTPBridge calls the host API over HTTP
type HTTPBridge struct {
	baseURL string
	client  *http.Client
}

type errorBody struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// NewHTTPBridge creates a bridge against the host at baseURL
func NewHTTPBridge(baseURL string, timeout time.Duration) (*HTTPBridge, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.NewBridgeUnavailableError("host URL is not configured")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPBridge{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (b *HTTPBridge) SearchCities(ctx context.Context, query string) ([]ports.CityOption, error) {
	var options []ports.CityOption
	if err := b.do(ctx, http.MethodGet, "/api/cities?q="+url.QueryEscape(query), nil, &options); err != nil {
		return nil, err
	}
	if options == nil {
		options = []ports.CityOption{}
	}
	return options, nil
}

func (b *HTTPBridge) GenerateWeatherReport(ctx context.Context, req ports.ReportRequest) (*ports.ReportSummary, error) {
	var summary ports.ReportSummary
	if err := b.do(ctx, http.MethodPost, "/api/reports", req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetAPIKey stores the WeatherAPI key on the host
func (b *HTTPBridge) SetAPIKey(ctx context.Context, key string) error {
	return b.do(ctx, http.MethodPut, "/api/settings/api-key", map[string]string{"key": key}, nil)
}

func (b *HTTPBridge) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.NewValidationError("failed to encode request")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return errors.NewBridgeUnavailableError(fmt.Sprintf("failed to build host request: %v", err))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(errors.BridgeUnavailableError, "Host is unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.BridgeUnavailableError, "Failed to read host response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.BridgeUnavailableError, "Host returned an unexpected response", err)
	}
	return nil
}

// decodeError rebuilds the host AppError so callers can branch on its type
func decodeError(status int, data []byte) error {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil || body.Error == "" {
		return errors.NewBridgeUnavailableError(fmt.Sprintf("Host returned status %d", status))
	}
	return errors.New(errors.ParseType(body.Type), body.Error)
}

var _ ports.HostBridge = (*HTTPBridge)(nil)
