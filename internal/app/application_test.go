package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sheetforecast.app/internal/adapters/api"
	"sheetforecast.app/internal/config"
	"sheetforecast.app/internal/ports"
)

func newWeatherServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "seed-key", r.URL.Query().Get("key"))
		switch r.URL.Path {
		case "/search.json":
			_, _ = w.Write([]byte(`[{"name":"Kyiv","region":"Kyyivs'ka Oblast'","country":"Ukraine","lat":50.43,"lon":30.52}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: 0},
		Weather: config.WeatherConfig{
			APIKey:             "seed-key",
			BaseURL:            baseURL,
			RateLimitRPS:       100,
			RateLimitBurst:     10,
			HTTPTimeoutSeconds: 5,
			EnableLogging:      true,
			LogFilePath:        filepath.Join(dir, "weather.log"),
		},
		Report: config.ReportConfig{
			TimeZone:     "UTC",
			WorkbookPath: filepath.Join(dir, "forecast.xlsx"),
			SheetName:    "Forecast",
			AnchorCell:   "B2",
		},
		Store: config.StoreConfig{
			Type:       config.StoreTypeMemory,
			SQLitePath: filepath.Join(dir, "settings.db"),
		},
		LogLevel: "debug",
	}
}

func TestNewApplicationWithConfig_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t, newWeatherServer(t).URL)

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	defer application.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	application.GetRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Contains(t, resp.Components, "weatherAPI")
	assert.Contains(t, resp.Components, "workbook")
	assert.NotContains(t, resp.Components, "database")
}

func TestNewApplicationWithConfig_SQLiteStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t, newWeatherServer(t).URL)
	cfg.Store.Type = config.StoreTypeSQLite

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	defer application.Close()

	key, err := application.deps.Settings().APIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seed-key", key)

	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Components["database"].Status)
}

func TestApplication_Bridge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t, newWeatherServer(t).URL)

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	defer application.Close()

	bridge, err := application.Bridge()
	require.NoError(t, err)

	options, err := bridge.SearchCities(context.Background(), "Kyi")
	require.NoError(t, err)
	assert.Equal(t, []ports.CityOption{{Label: "Kyiv, Kyyivs'ka Oblast'", Value: "50.43,30.52"}}, options)
}

func TestApplication_ShutdownWithoutStart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t, newWeatherServer(t).URL)

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)

	assert.NoError(t, application.Shutdown(context.Background()))
	application.Close()
}

func TestNewApplicationWithConfig_RedisUnavailable(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Store.Type = config.StoreTypeRedis
	cfg.Store.Redis = config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}

	_, err := NewApplicationWithConfig(cfg)
	assert.Error(t, err)
}
