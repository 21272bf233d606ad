package config

import (
	"flag"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected *Config
		initial  *Config
		name     string
		args     []string
	}{
		{name: "all flags set",
			args:    []string{"cmd", "-a", "https://flag.example/api/v1", "-r", "https://rates.example/v6/latest", "-d", "flag.db", "-u", "USD", "-l", "debug"},
			initial: &Config{},
			expected: &Config{
				APIBaseURL:      "https://flag.example/api/v1",
				RatesURL:        "https://rates.example/v6/latest",
				DatabasePath:    "flag.db",
				DisplayCurrency: "USD",
				LogLevel:        "debug",
			}},
		{name: "unset flags keep current values",
			args:    []string{"cmd", "-u", "RUB"},
			initial: &Config{APIBaseURL: "https://preset.example", DisplayCurrency: "KZT", LogLevel: "info"},
			expected: &Config{
				APIBaseURL:      "https://preset.example",
				DisplayCurrency: "RUB",
				LogLevel:        "info",
			}},
		{name: "unknown flags are filtered out",
			args:     []string{"cmd", "-z", "whatever", "-u", "USD"},
			initial:  &Config{},
			expected: &Config{DisplayCurrency: "USD"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := tt.initial

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
