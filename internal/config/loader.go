package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// SetDefaults installs default values on the shared viper instance. Called
// once during command initialization, before any Load.
func SetDefaults() {
	viper.SetDefault("logging.level", "info")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	viper.SetDefault("movie.base_url", "http://www.omdbapi.com/")
	viper.SetDefault("movie.api_key", "")
	viper.SetDefault("movie.timeout", "10s")

	viper.SetDefault("transit.base_url", "")
	viper.SetDefault("transit.timeout", "10s")
	viper.SetDefault("transit.default_limit", 5)

	viper.SetDefault("stock.base_url", "https://www.alphavantage.co/query")
	viper.SetDefault("stock.api_key", "")
	viper.SetDefault("stock.timeout", "10s")
	viper.SetDefault("stock.requests_per_window", 5)
	viper.SetDefault("stock.window", "60s")

	viper.SetDefault("translate.endpoint", "https://libretranslate.de/translate")
	viper.SetDefault("translate.live", false)
	viper.SetDefault("translate.timeout", "15s")
	viper.SetDefault("translate.max_retries", 3)
	viper.SetDefault("translate.base_delay", "1s")

	// Presence of an upstream API key switches the utility to live mode.
	_ = viper.BindEnv("movie.api_key", "OMDB_API_KEY", "QUERYLENS_MOVIE_API_KEY")
	_ = viper.BindEnv("stock.api_key", "ALPHAVANTAGE_API_KEY", "QUERYLENS_STOCK_API_KEY")
}

// Load decodes the merged viper settings into a typed Config, with a decode
// hook so durations can arrive as strings from YAML or env.
func Load() (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Stock.Window <= 0 {
		cfg.Stock.Window = 60 * time.Second
	}
	if cfg.Stock.RequestsPerWindow <= 0 {
		cfg.Stock.RequestsPerWindow = 5
	}

	setConfig(cfg)
	return cfg, nil
}

// GetConfig returns the currently loaded configuration (thread-safe).
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}
