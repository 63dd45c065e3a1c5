// Package config provides typed configuration for the querylens utilities.
// Live vs. mock mode per utility is decided here: a utility runs live only
// when its API key (or endpoint) is configured.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Server    ServerConfig    `mapstructure:"server"`
	Movie     MovieConfig     `mapstructure:"movie"`
	Transit   TransitConfig   `mapstructure:"transit"`
	Stock     StockConfig     `mapstructure:"stock"`
	Translate TranslateConfig `mapstructure:"translate"`
}

// LoggingConfig controls the zap loggers.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig contains the search-API server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MovieConfig configures the OMDb client. An empty APIKey selects mock mode.
type MovieConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TransitConfig configures the transit client. An empty BaseURL selects mock
// mode.
type TransitConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	DefaultLimit int           `mapstructure:"default_limit"`
}

// StockConfig configures the Alpha Vantage client. An empty APIKey selects
// mock mode.
type StockConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	APIKey            string        `mapstructure:"api_key"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerWindow int           `mapstructure:"requests_per_window"`
	Window            time.Duration `mapstructure:"window"`
}

// TranslateConfig configures the LibreTranslate client and its retry policy.
// Mock mode is the default; Live opts into the real endpoint.
type TranslateConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	Live       bool          `mapstructure:"live"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
	BaseDelay  time.Duration `mapstructure:"base_delay"`
}

// MovieLive reports whether the movie utility should hit the real API.
func (c *Config) MovieLive() bool { return c != nil && c.Movie.APIKey != "" }

// TransitLive reports whether the transit utility should hit a real API.
func (c *Config) TransitLive() bool { return c != nil && c.Transit.BaseURL != "" }

// StockLive reports whether the stock utility should hit the real API.
func (c *Config) StockLive() bool { return c != nil && c.Stock.APIKey != "" }

// TranslateLive reports whether the translate utility should hit the real
// API.
func (c *Config) TranslateLive() bool { return c != nil && c.Translate.Live }
