package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath == "" {
		t.Fatal("expected default db path")
	}
	if !cfg.Desktop.Notifications {
		t.Fatal("expected desktop notifications on by default")
	}
	if cfg.Scheduler.EventBuffer != 16 {
		t.Fatalf("unexpected event buffer default %d", cfg.Scheduler.EventBuffer)
	}
	if cfg.Backup.TimeoutSeconds != 30 {
		t.Fatalf("unexpected backup timeout default %d", cfg.Backup.TimeoutSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "db_path: /tmp/alt.db\nbackup:\n  timeout_seconds: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/alt.db" {
		t.Fatalf("db path not taken from file: %q", cfg.DBPath)
	}
	if cfg.Backup.TimeoutSeconds != 5 {
		t.Fatalf("backup timeout not taken from file: %d", cfg.Backup.TimeoutSeconds)
	}
	// Untouched keys keep their defaults
	if cfg.Scheduler.EventBuffer != 16 {
		t.Fatalf("unexpected event buffer %d", cfg.Scheduler.EventBuffer)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backup.TimeoutSeconds != 30 {
		t.Fatalf("unexpected backup timeout %d", cfg.Backup.TimeoutSeconds)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/file.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REMINDD_DB_PATH", "/tmp/env.db")
	t.Setenv("REMINDD_DESKTOP_NOTIFICATIONS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("env override ignored: %q", cfg.DBPath)
	}
	if cfg.Desktop.Notifications {
		t.Fatal("env override for notifications ignored")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{DBPath: "x", Scheduler: SchedulerConfig{EventBuffer: 0}, Backup: BackupConfig{TimeoutSeconds: 30}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero event buffer")
	}
	cfg = &Config{Scheduler: SchedulerConfig{EventBuffer: 16}, Backup: BackupConfig{TimeoutSeconds: 30}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty db path")
	}
}
