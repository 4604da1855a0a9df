package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: "0.0.0.0"
everflow:
  api_key: "secret"
  timezone_id: 67
cors:
  allowed_origins:
    - "https://dashboard.example.com"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Everflow.APIKey != "secret" {
		t.Errorf("api key = %q", cfg.Everflow.APIKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://dashboard.example.com" {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server: {}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Everflow.BaseURL != "https://api.eflow.team" {
		t.Errorf("default base URL = %q", cfg.Everflow.BaseURL)
	}
	if cfg.Everflow.TimezoneID != 67 {
		t.Errorf("default timezone = %d", cfg.Everflow.TimezoneID)
	}
	if cfg.Everflow.ReportingTimezoneID != 90 {
		t.Errorf("default reporting timezone = %d", cfg.Everflow.ReportingTimezoneID)
	}
	if cfg.Everflow.CurrencyID != "USD" {
		t.Errorf("default currency = %q", cfg.Everflow.CurrencyID)
	}
	if cfg.Server.WriteTimeout() != 120*time.Second {
		t.Errorf("default write timeout = %v", cfg.Server.WriteTimeout())
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("default origins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "server: [not a map")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("EVERFLOW_API_KEY", "env-key")
	t.Setenv("PORT", "7070")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadFromEnv(writeConfig(t, "everflow:\n  api_key: file-key\n"))
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	if cfg.Everflow.APIKey != "env-key" {
		t.Errorf("api key = %q, env must override file", cfg.Everflow.APIKey)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.CORS.AllowedOrigins[i] != origin {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.CORS.AllowedOrigins[i], origin)
		}
	}
}

func TestGetHost(t *testing.T) {
	sc := ServerConfig{Host: "localhost"}

	if got := sc.GetHost(); got != "localhost" {
		t.Errorf("host = %q", got)
	}

	t.Setenv("SERVER_HOST", "10.0.0.5")
	if got := sc.GetHost(); got != "10.0.0.5" {
		t.Errorf("host = %q, SERVER_HOST must override", got)
	}

	t.Setenv("ECS_CONTAINER_METADATA_URI", "http://169.254.170.2/v3")
	if got := sc.GetHost(); got != "0.0.0.0" {
		t.Errorf("host = %q, container env must bind all interfaces", got)
	}
}
