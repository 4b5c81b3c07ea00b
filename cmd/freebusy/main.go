package main

import (
	"log/slog"
	"os"

	"github.com/felixgeelhaar/freebusy/adapter/cli"
	"github.com/felixgeelhaar/freebusy/pkg/config"
	"github.com/felixgeelhaar/freebusy/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development", DefaultTimeZone: "UTC", SchedulePath: "schedule.json"}
	}

	if cfg.IsDevelopment() {
		logger = observability.NewLogger(observability.LogConfig{
			Level:  observability.LogLevelDebug,
			Format: observability.LogFormat(cfg.LogFormat),
			Output: os.Stderr,
		})
	}
	slog.SetDefault(logger)

	cli.SetLogger(logger)
	cli.SetConfig(cfg)
	cli.Execute()
}
