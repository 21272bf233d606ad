package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adilbek-m/saudalink/internal/buildinfo"
	"github.com/adilbek-m/saudalink/internal/client/cli"
	"github.com/adilbek-m/saudalink/internal/client/config"
	"github.com/adilbek-m/saudalink/internal/logging"
)

func newLogger(level string) (logging.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zl, err := zc.Build()
	if err != nil {
		return nil, nil, err
	}

	return logging.NewZapLogger(zl), func() { _ = zl.Sync() }, nil
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, sync, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
