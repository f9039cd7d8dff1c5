// Package server parses vizier server flags and starts the service host.
package server

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/ssoudan/oss-vizier/internal/platform/cmd"
	app "github.com/ssoudan/oss-vizier/internal/services/vizier/app"
)

// Config holds vizier server command configuration.
type Config struct {
	Host          string        `env:"OSS_VIZIER_HOST" envDefault:"0.0.0.0"`
	Port          int           `env:"OSS_VIZIER_PORT" envDefault:"28080"`
	DatabaseURL   string        `env:"OSS_VIZIER_DATABASE_URL"`
	RecyclePeriod time.Duration `env:"OSS_VIZIER_RECYCLE_PERIOD" envDefault:"100ms"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Host, "host", cfg.Host, "The vizier server bind address")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The vizier server port")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL,
		"The study database URL (empty for in-memory)")
	fs.DurationVar(&cfg.RecyclePeriod, "recycle-period", cfg.RecyclePeriod,
		"How often stopped trials are finalized")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the vizier service host.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceVizier, func(ctx context.Context) error {
		return app.Run(ctx, app.Options{
			Host:          cfg.Host,
			Port:          cfg.Port,
			DatabaseURL:   cfg.DatabaseURL,
			RecyclePeriod: cfg.RecyclePeriod,
		})
	})
}
