package config

import (
	"flag"
	"os"

	"github.com/adilbek-m/saudalink/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the marketplace API (default from Config)
//	-r string   base URL of the exchange-rate source (default from Config)
//	-d string   path to the local sqlite database (default from Config)
//	-u string   display currency code (default from Config)
//	-l string   log level (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-u", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the marketplace API")
	fs.StringVar(&cfg.RatesURL, "r", cfg.RatesURL, "base URL of the exchange-rate source")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local sqlite database")
	fs.StringVar(&cfg.DisplayCurrency, "u", cfg.DisplayCurrency, "display currency code")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
