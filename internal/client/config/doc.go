// Package config loads runtime configuration for the Saudalink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults and environment variables (cleanenv; a local .env
//     file is honored via godotenv).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the marketplace API
//	-r string   base URL of the exchange-rate source
//	-d string   path to the local sqlite database
//	-u string   display currency code
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "4h" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.saudalink.kz/api/v1",
//	  "rates_url": "https://open.er-api.com/v6/latest",
//	  "database_path": "saudalink.db",
//	  "display_currency": "KZT",
//	  "http_timeout": "10s",
//	  "rates_ttl": "4h",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                          — the resolved runtime settings
//   - func LoadConfig() (*Config, error)   — applies defaults/env, JSON, then flags
package config
