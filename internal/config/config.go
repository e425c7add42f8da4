package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DBPath    string          `koanf:"db_path"`
	Desktop   DesktopConfig   `koanf:"desktop"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Backup    BackupConfig    `koanf:"backup"`
}

type DesktopConfig struct {
	Notifications bool `koanf:"notifications"`
}

type SchedulerConfig struct {
	EventBuffer int `koanf:"event_buffer"`
}

type BackupConfig struct {
	TimeoutSeconds int `koanf:"timeout_seconds"`
}

// Load merges defaults, an optional YAML file, and REMINDD_ environment
// variables, in that order of precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider("REMINDD_", ".", func(s string) string {
		return s
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// Handle the common overrides explicitly
	if dbPath := os.Getenv("REMINDD_DB_PATH"); dbPath != "" {
		k.Set("db_path", dbPath)
	}
	if v := os.Getenv("REMINDD_DESKTOP_NOTIFICATIONS"); v == "false" || v == "0" {
		k.Set("desktop.notifications", false)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.Scheduler.EventBuffer <= 0 {
		return fmt.Errorf("scheduler event_buffer must be positive")
	}
	if c.Backup.TimeoutSeconds <= 0 {
		return fmt.Errorf("backup timeout_seconds must be positive")
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
