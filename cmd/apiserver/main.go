// API server entry point for GHS Label Quick Search.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rjsky311/GHS-label-quick-search/internal/app"
	"github.com/rjsky311/GHS-label-quick-search/internal/config"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: GHS_* environment)")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}
	}

	level := logging.NewDynamicLevel(cfg.Log.Level)
	logger, err := logging.NewLoggerWithLevel(logging.LogConfig{Format: cfg.Log.Format}, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting GHS label search API server",
		logging.String("version", config.Version),
		logging.String("addr", cfg.Server.Addr()),
		logging.Bool("redis", cfg.Redis.Enabled),
		logging.Bool("metrics", cfg.Metrics.Enabled))

	if *configPath != "" {
		err := config.Watch(*configPath, func(next *config.Config) {
			if next.Log.Level != level.String() {
				level.Set(next.Log.Level)
				logger.Info("log level changed", logging.String("level", level.String()))
			}
		}, func(err error) {
			logger.Warn("ignoring invalid configuration change", logging.Err(err))
		})
		if err != nil {
			logger.Warn("configuration watch disabled", logging.Err(err))
		}
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("initialization failed", logging.Err(err))
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.RunHTTP(ctx); err != nil {
		logger.Error("HTTP server error", logging.Err(err))
		a.Close()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
