package config

import (
	"slices"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "LOG_LEVEL", "MAX_CANVAS_SIDE", "BATCH_WORKERS", "CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "3000" || cfg.Environment != "development" || cfg.LogLevel != "info" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxCanvasSide != 8192 || cfg.BatchWorkers != 4 || cfg.ReadTimeout != 10 {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("cors origins = %q", cfg.CORSOrigins)
	}
	if cfg.PortOr("3001").Port != "3001" {
		t.Errorf("PortOr ignored empty PORT")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_CANVAS_SIDE", "4096")
	t.Setenv("BATCH_WORKERS", "not a number")
	t.Setenv("CORS_ORIGINS", " http://localhost:5173, ,https://grids.example.com")

	cfg := Load().PortOr("3001")
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.MaxCanvasSide != 4096 {
		t.Errorf("max side = %d", cfg.MaxCanvasSide)
	}
	if cfg.BatchWorkers != 4 {
		t.Errorf("bad int should fall back, got %d", cfg.BatchWorkers)
	}
	if want := []string{"http://localhost:5173", "https://grids.example.com"}; !slices.Equal(cfg.CORSOrigins, want) {
		t.Errorf("cors origins = %q, want %q", cfg.CORSOrigins, want)
	}
	if Getenv("GRID_STUDIO_UNSET", "x") != "x" {
		t.Error("Getenv default")
	}
}
