package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")

	assert.Equal(t, "https://api.saudalink.kz/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "https://open.er-api.com/v6/latest", cfg.RatesURL)
	assert.Equal(t, "saudalink.db", cfg.DatabasePath)
	assert.Equal(t, "KZT", cfg.DisplayCurrency)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 4*time.Hour, cfg.RatesTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Environment(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	t.Setenv("SAUDALINK_API_URL", "https://staging.example/api/v1")
	t.Setenv("SAUDALINK_CURRENCY", "USD")
	t.Setenv("SAUDALINK_RATES_TTL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "USD", cfg.DisplayCurrency)
	assert.Equal(t, 30*time.Minute, cfg.RatesTTL)
	// Fields without env overrides keep their defaults.
	assert.Equal(t, "saudalink.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("SAUDALINK_API_URL", "https://from-env.example/api/v1")
	os.Args = []string{"testbin", "-a", "https://from-flag.example/api/v1"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://from-flag.example/api/v1", cfg.APIBaseURL)
}
