package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg = applyDefaults(cfg)

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", cfg.HTTP.Addr)
	}
	if cfg.Dataset.Source != SourceFile || cfg.Dataset.Path != "data/dashboard-data.json" {
		t.Errorf("unexpected dataset defaults: %+v", cfg.Dataset)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("expected 5m, got %v", cfg.Cache.TTL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9090")
	defer os.Unsetenv("HTTP_ADDR")
	os.Setenv("DATASET_SOURCE", "Postgres")
	defer os.Unsetenv("DATASET_SOURCE")
	os.Setenv("CACHE_TTL", "-1s")
	defer os.Unsetenv("CACHE_TTL")

	cfg := Config{}
	cfg = applyEnv(cfg)

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.HTTP.Addr)
	}
	if cfg.Dataset.Source != SourcePostgres {
		t.Errorf("expected postgres, got %s", cfg.Dataset.Source)
	}
	if cfg.Cache.TTL >= 0 {
		t.Errorf("expected negative ttl, got %v", cfg.Cache.TTL)
	}
}

func TestConfig_PortOverridesAddr(t *testing.T) {
	os.Setenv("HTTP_ADDR", ":9090")
	defer os.Unsetenv("HTTP_ADDR")
	os.Setenv("PORT", "3000")
	defer os.Unsetenv("PORT")

	cfg := applyEnv(Config{})
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("expected :3000, got %s", cfg.HTTP.Addr)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http:
  addr: ":7070"
dataset:
  source: file
  path: /srv/data.json
cache:
  ttl: 30s
logging:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" || cfg.Dataset.Path != "/srv/data.json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Cache.TTL != 30*time.Second || cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("unexpected cache/logging: %+v %+v", cfg.Cache, cfg.Logging)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.HTTP.Addr == "" {
		t.Error("defaults not applied")
	}
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := applyDefaults(Config{})
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Dataset.Source = SourcePostgres
	if err := cfg.Validate(); err == nil {
		t.Error("postgres source without dsn should fail")
	}

	cfg.Dataset.Source = "s3"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown source should fail")
	}
}
