package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pesikj/political-pulse-mapper/internal/store"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
	if cfg.StoreConfig().Kind != store.KindEmbedded {
		t.Errorf("expected embedded kind by default, got %q", cfg.StoreConfig().Kind)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
store:
  path: /var/lib/compass/compass.db
server:
  port: 9000
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.StorePath() != "/var/lib/compass/compass.db" {
		t.Errorf("unexpected store path %q", cfg.StorePath())
	}
	// Defaults should still be set for unspecified fields
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestStoreKindSelection(t *testing.T) {
	cfg := &Config{}
	if got := cfg.StoreConfig().Kind; got != store.KindEmbedded {
		t.Errorf("expected embedded, got %q", got)
	}

	cfg.Store.UpstreamURL = "https://compass.example.org"
	if got := cfg.StoreConfig().Kind; got != store.KindHTTPFallback {
		t.Errorf("expected http-with-fallback, got %q", got)
	}

	// database_url wins over upstream_url
	cfg.Store.DatabaseURL = "postgres://localhost/compass"
	if got := cfg.StoreConfig().Kind; got != store.KindRemote {
		t.Errorf("expected remote, got %q", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("COMPASS_DATABASE_URL", "postgres://db.example.org/compass")
	t.Setenv("COMPASS_PORT", "9090")

	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Store.DatabaseURL != "postgres://db.example.org/compass" {
		t.Errorf("expected env database_url, got %q", cfg.Store.DatabaseURL)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected env port, got %d", cfg.Server.Port)
	}
	if cfg.StoreConfig().Kind != store.KindRemote {
		t.Errorf("expected remote kind, got %q", cfg.StoreConfig().Kind)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}
