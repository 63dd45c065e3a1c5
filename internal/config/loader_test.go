package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func loadFresh(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadFresh(t)

	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)

	require.Equal(t, 10*time.Second, cfg.Movie.Timeout)
	require.Equal(t, 15*time.Second, cfg.Translate.Timeout)
	require.Equal(t, 3, cfg.Translate.MaxRetries)
	require.Equal(t, time.Second, cfg.Translate.BaseDelay)

	require.Equal(t, 5, cfg.Stock.RequestsPerWindow)
	require.Equal(t, 60*time.Second, cfg.Stock.Window)
	require.Equal(t, 5, cfg.Transit.DefaultLimit)
}

func TestModeSelectionFollowsKeys(t *testing.T) {
	cfg := loadFresh(t)
	require.False(t, cfg.MovieLive())
	require.False(t, cfg.TransitLive())
	require.False(t, cfg.StockLive())
	require.False(t, cfg.TranslateLive())

	viper.Set("movie.api_key", "k1")
	viper.Set("stock.api_key", "k2")
	viper.Set("transit.base_url", "http://transit.example")
	viper.Set("translate.live", true)

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.MovieLive())
	require.True(t, cfg.TransitLive())
	require.True(t, cfg.StockLive())
	require.True(t, cfg.TranslateLive())
}

func TestAPIKeyEnvBindings(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("OMDB_API_KEY", "omdb-secret")
	t.Setenv("ALPHAVANTAGE_API_KEY", "av-secret")

	SetDefaults()
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "omdb-secret", cfg.Movie.APIKey)
	require.Equal(t, "av-secret", cfg.Stock.APIKey)
	require.True(t, cfg.MovieLive())
	require.True(t, cfg.StockLive())
}

func TestDurationStringsDecode(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("translate.base_delay", "250ms")
	viper.Set("stock.window", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Translate.BaseDelay)
	require.Equal(t, 90*time.Second, cfg.Stock.Window)
}
