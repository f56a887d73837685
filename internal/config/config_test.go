package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.PollInterval != Duration(time.Second) {
		t.Errorf("expected 1s poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Launcher != "gtk-launch" {
		t.Errorf("expected gtk-launch, got %s", cfg.Launcher)
	}
	if len(cfg.DesktopDirs) == 0 {
		t.Error("expected default desktop dirs")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RegistryPath == "" {
		t.Error("expected default registry path")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "log_level: debug\nno_color: true\npoll_interval: 250ms\nlauncher: kioclient\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" || !cfg.NoColor || cfg.Launcher != "kioclient" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PollInterval != Duration(250*time.Millisecond) {
		t.Errorf("expected 250ms, got %v", cfg.PollInterval)
	}
	// Unset keys keep their defaults.
	if cfg.RegistryPath == "" {
		t.Error("expected default registry path to survive")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_NonPositiveIntervalReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("poll_interval: 0s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollInterval != Duration(time.Second) {
		t.Errorf("expected 1s floor, got %v", cfg.PollInterval)
	}
}
