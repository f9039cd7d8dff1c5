package server

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("vizier-server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != 28080 {
		t.Errorf("Port = %d, want 28080", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty (in-memory)", cfg.DatabaseURL)
	}
	if cfg.RecyclePeriod != 100*time.Millisecond {
		t.Errorf("RecyclePeriod = %v, want 100ms", cfg.RecyclePeriod)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("vizier-server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-host", "127.0.0.1",
		"-port", "9000",
		"-database-url", "sqlite:///tmp/vizier.db",
		"-recycle-period", "250ms",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 9000 {
		t.Errorf("endpoint = %s:%d, want 127.0.0.1:9000", cfg.Host, cfg.Port)
	}
	if cfg.DatabaseURL != "sqlite:///tmp/vizier.db" {
		t.Errorf("DatabaseURL = %q, want sqlite:///tmp/vizier.db", cfg.DatabaseURL)
	}
	if cfg.RecyclePeriod != 250*time.Millisecond {
		t.Errorf("RecyclePeriod = %v, want 250ms", cfg.RecyclePeriod)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("OSS_VIZIER_PORT", "9100")
	t.Setenv("OSS_VIZIER_DATABASE_URL", "sqlite:///:memory:")

	fs := flag.NewFlagSet("vizier-server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want env override 9100", cfg.Port)
	}
	if cfg.DatabaseURL != "sqlite:///:memory:" {
		t.Errorf("DatabaseURL = %q, want env override", cfg.DatabaseURL)
	}
}

func TestParseConfigRejectsPositionalArgs(t *testing.T) {
	fs := flag.NewFlagSet("vizier-server", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"extra"}); err == nil {
		t.Fatal("ParseConfig() with positional args expected error")
	}
}
