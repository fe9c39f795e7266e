package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"sheetforecast.app/pkg/errors"
)

const (
	maxRedisDB       = 15
	maxPortNumber    = 65535
	maxDebounceMs    = 5000
	maxHTTPTimeout   = 120
	defaultSheetName = "Forecast"
)

// Config represents the host service configuration
type Config struct {
	Server   ServerConfig  `split_words:"true"`
	Weather  WeatherConfig `split_words:"true"`
	Report   ReportConfig  `split_words:"true"`
	Store    StoreConfig   `split_words:"true"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	// APIKey seeds the secret store on startup when set
	APIKey             string  `envconfig:"WEATHER_API_KEY"`
	BaseURL            string  `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	RateLimitRPS       float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst     int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	HTTPTimeoutSeconds int     `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging      bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath        string  `envconfig:"WEATHER_LOG_FILE_PATH" default:""`
}

type ReportConfig struct {
	TimeZone     string `envconfig:"REPORT_TIME_ZONE" default:"UTC"`
	WorkbookPath string `envconfig:"REPORT_WORKBOOK_PATH" default:"data/forecast.xlsx"`
	SheetName    string `envconfig:"REPORT_SHEET_NAME" default:"Forecast"`
	AnchorCell   string `envconfig:"REPORT_ANCHOR_CELL" default:"A1"`
}

// Location resolves the configured report time zone
func (r ReportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("REPORT_TIME_ZONE %q is not a valid time zone", r.TimeZone), err)
	}
	return loc, nil
}

// StoreType selects the backend holding the API key
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeSQLite
	StoreTypePostgres
	StoreTypeRedis
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s >= StoreTypeMemory && s <= StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type       StoreType      `envconfig:"SECRET_STORE_TYPE" default:"sqlite"`
	SQLitePath string         `envconfig:"SQLITE_PATH" default:"data/settings.db"`
	Database   DatabaseConfig `split_words:"true"`
	Redis      RedisConfig    `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"sheetforecast"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"sheetforecast:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeout {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

// HTTPTimeout returns the provider request timeout
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

func (r *ReportConfig) Validate() error {
	if _, err := r.Location(); err != nil {
		return err
	}
	if strings.TrimSpace(r.WorkbookPath) == "" {
		return errors.NewConfigurationError("REPORT_WORKBOOK_PATH cannot be empty", nil)
	}
	if !strings.HasSuffix(strings.ToLower(r.WorkbookPath), ".xlsx") {
		return errors.NewConfigurationError("REPORT_WORKBOOK_PATH must point to an .xlsx file", nil)
	}
	if strings.TrimSpace(r.SheetName) == "" {
		r.SheetName = defaultSheetName
	}
	if strings.TrimSpace(r.AnchorCell) == "" {
		return errors.NewConfigurationError("REPORT_ANCHOR_CELL cannot be empty", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("SECRET_STORE_TYPE must be one of: memory, sqlite, postgres, redis", nil)
	}

	switch s.Type {
	case StoreTypeSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return errors.NewConfigurationError("SQLITE_PATH cannot be empty when using sqlite store", nil)
		}
	case StoreTypePostgres:
		return s.Database.Validate()
	case StoreTypeRedis:
		return s.Redis.Validate()
	}

	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

// BridgeType selects how the sidebar reaches the host operations
type BridgeType string

const (
	BridgeHTTP   BridgeType = "http"
	BridgeDirect BridgeType = "direct"
)

// SidebarConfig configures the terminal sidebar client
type SidebarConfig struct {
	HostURL    string     `envconfig:"SIDEBAR_HOST_URL" default:"http://localhost:8080"`
	DebounceMs int        `envconfig:"SIDEBAR_DEBOUNCE_MS" default:"300"`
	Bridge     BridgeType `envconfig:"SIDEBAR_BRIDGE" default:"http"`
	TimeZone   string     `envconfig:"REPORT_TIME_ZONE" default:"UTC"`
	LogLevel   string     `envconfig:"LOG_LEVEL" default:"warn"`
}

func LoadSidebarConfig() (*SidebarConfig, error) {
	var config SidebarConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing sidebar config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (s *SidebarConfig) Validate() error {
	if s.Bridge != BridgeHTTP && s.Bridge != BridgeDirect {
		return errors.NewConfigurationError("SIDEBAR_BRIDGE must be one of: http, direct", nil)
	}
	if s.Bridge == BridgeHTTP &&
		!strings.HasPrefix(s.HostURL, "http://") && !strings.HasPrefix(s.HostURL, "https://") {
		return errors.NewConfigurationError("SIDEBAR_HOST_URL must start with http:// or https://", nil)
	}
	if s.DebounceMs < 0 || s.DebounceMs > maxDebounceMs {
		return errors.NewConfigurationError("SIDEBAR_DEBOUNCE_MS must be between 0 and 5000", nil)
	}
	if _, err := time.LoadLocation(s.TimeZone); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("REPORT_TIME_ZONE %q is not a valid time zone", s.TimeZone), err)
	}
	return nil
}

// Debounce returns the autocomplete quiet period
func (s SidebarConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}
