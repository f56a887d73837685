// Package config holds the explicit configuration value passed into
// component constructors. Components never read ambient global state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"winctl/internal/registry"
)

// Duration wraps time.Duration so YAML configs can say "250ms" or
// "2s" instead of nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bad duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config is the whole runtime configuration.
type Config struct {
	LogLevel     string   `yaml:"log_level"`
	NoColor      bool     `yaml:"no_color"`
	PollInterval Duration `yaml:"poll_interval"`
	RegistryPath string   `yaml:"registry_path"`
	DesktopDirs  []string `yaml:"desktop_dirs"`
	Launcher     string   `yaml:"launcher"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:     "info",
		PollInterval: Duration(time.Second),
		RegistryPath: defaultRegistryPath(),
		DesktopDirs:  registry.DefaultDesktopDirs(),
		Launcher:     "gtk-launch",
	}
}

// DefaultPath is the user config file location.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "winctl", "config.yaml")
	}
	return ""
}

// Load reads path over the defaults. A missing file (or empty path)
// yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = Duration(time.Second)
	}
	return cfg, nil
}

func defaultRegistryPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "winctl", "apps.yaml")
	}
	return "apps.yaml"
}
