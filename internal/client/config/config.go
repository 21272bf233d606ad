package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Saudalink CLI.
//
// Fields:
//   - APIBaseURL: root of the marketplace REST API, including any path prefix.
//   - RatesURL: root of the exchange-rate source; the base currency code is
//     appended to it.
//   - DatabasePath: sqlite file holding the session and cached rate snapshots.
//   - DisplayCurrency: currency prices are shown in by default.
//   - HTTPTimeout: bound on every outbound HTTP call.
//   - RatesTTL: freshness window of a cached rate snapshot.
type Config struct {
	APIBaseURL      string        `env:"SAUDALINK_API_URL" env-default:"https://api.saudalink.kz/api/v1"`
	RatesURL        string        `env:"SAUDALINK_RATES_URL" env-default:"https://open.er-api.com/v6/latest"`
	DatabasePath    string        `env:"SAUDALINK_DB" env-default:"saudalink.db"`
	DisplayCurrency string        `env:"SAUDALINK_CURRENCY" env-default:"KZT"`
	HTTPTimeout     time.Duration `env:"SAUDALINK_HTTP_TIMEOUT" env-default:"10s"`
	RatesTTL        time.Duration `env:"SAUDALINK_RATES_TTL" env-default:"4h"`
	LogLevel        string        `env:"SAUDALINK_LOG_LEVEL" env-default:"info"`
}

// LoadConfig constructs a Config: defaults and environment first (a local
// .env file is honored if present), then values from a JSON file, then
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
