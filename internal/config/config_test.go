package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
upstream:
  base_url: "http://search.internal:8000"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Upstream.BaseURL != "http://search.internal:8000" {
		t.Errorf("unexpected upstream base URL: %q", cfg.Upstream.BaseURL)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Upstream.BaseURL != "http://localhost:8000" {
		t.Errorf("base_url should default to the local dev address, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.ResultLimit != 8 {
		t.Errorf("result_limit should default to 8, got %d", cfg.Upstream.ResultLimit)
	}
	if cfg.Upstream.TimeoutSeconds != 30 {
		t.Errorf("timeout_seconds should default to 30, got %d", cfg.Upstream.TimeoutSeconds)
	}
	if cfg.History.DatabasePath == "" {
		t.Error("history database_path should have a default")
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file should error")
	}
}

func TestLoad_relativeHistoryPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
history:
  database_path: "./searches.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.History.DatabasePath != filepath.Join(dir, "searches.db") {
		t.Errorf("./ paths should resolve relative to the config dir, got %q", cfg.History.DatabasePath)
	}
}
