package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Scenarios.Path != "scenarios.json" {
		t.Fatalf("expected default scenarios path, got %s", cfg.Scenarios.Path)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: \"9999\"\nscenarios:\n  path: /var/lib/roadmap/scenarios.json\nnotify:\n  from_email: roadmap@example.com\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Scenarios.Path != "/var/lib/roadmap/scenarios.json" {
		t.Fatalf("unexpected scenarios path %s", cfg.Scenarios.Path)
	}
	if cfg.Notify.FromEmail != "roadmap@example.com" {
		t.Fatalf("unexpected from email %s", cfg.Notify.FromEmail)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("FROM_EMAIL", "override@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected env port 7070, got %s", cfg.Server.Port)
	}
	if cfg.Notify.FromEmail != "override@example.com" {
		t.Fatalf("expected env from email, got %s", cfg.Notify.FromEmail)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
