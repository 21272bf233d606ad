package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/adilbek-m/saudalink/internal/flagx"
	"github.com/adilbek-m/saudalink/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "4h" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	RatesURL        string         `json:"rates_url"`
	DatabasePath    string         `json:"database_path"`
	DisplayCurrency string         `json:"display_currency"`
	HTTPTimeout     timex.Duration `json:"http_timeout"`
	RatesTTL        timex.Duration `json:"rates_ttl"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the JSON override the current values; absent
// fields leave the Config untouched.
//
// Intended usage is: defaults -> env -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) error {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RatesURL != "" {
		cfg.RatesURL = jc.RatesURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DisplayCurrency != "" {
		cfg.DisplayCurrency = jc.DisplayCurrency
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.RatesTTL.Duration != 0 {
		cfg.RatesTTL = time.Duration(jc.RatesTTL.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}

	return nil
}
