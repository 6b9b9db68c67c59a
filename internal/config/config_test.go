package config_test

import (
	"testing"

	"invtracker/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "TEMPLATES_DIR", "LOG_FILE", "API_RATE_MAX"} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	if cfg.Port != "8080" || cfg.DBDSN != "invtracker.db" || cfg.TemplatesDir != "./web/templates" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.APIRateMax != 60 {
		t.Fatalf("want rate 60, got %d", cfg.APIRateMax)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("LOG_FILE", "")
	t.Setenv("API_RATE_MAX", "5")
	cfg := config.Load()
	if cfg.Port != "9090" || cfg.DBDSN != ":memory:" || cfg.APIRateMax != 5 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadBadRateFallsBack(t *testing.T) {
	t.Setenv("API_RATE_MAX", "lots")
	if got := config.Load().APIRateMax; got != 60 {
		t.Fatalf("want fallback 60, got %d", got)
	}
}
