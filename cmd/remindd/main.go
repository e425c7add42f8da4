package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/remindd/internal/backup"
	"github.com/sandeepkv93/remindd/internal/config"
	"github.com/sandeepkv93/remindd/internal/notify"
	"github.com/sandeepkv93/remindd/internal/scheduler"
	"github.com/sandeepkv93/remindd/internal/settings"
	"github.com/sandeepkv93/remindd/internal/storage"
	"github.com/sandeepkv93/remindd/internal/store"
	"github.com/sandeepkv93/remindd/internal/update"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "remindd failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.Desktop.Notifications {
		notifier = notify.DesktopNotifier{}
	}
	sched := scheduler.New(notifier, cfg.Scheduler.EventBuffer)
	defer sched.Stop()

	reminders := store.New(repo, sched)
	ctx := context.Background()
	if err := reminders.Load(ctx); err != nil {
		return err
	}
	sched.ScheduleAll(reminders.Reminders())

	svc := settings.NewService(repo)
	theme, err := svc.Theme(ctx)
	if err != nil {
		return err
	}
	backupURL, err := svc.BackupURL(ctx)
	if err != nil {
		return err
	}
	secret, err := svc.EnsureSecretKey(ctx)
	if err != nil {
		return err
	}
	lastBackup, err := svc.LastBackup(ctx)
	if err != nil {
		return err
	}

	m := update.New(update.Deps{
		Store:          reminders,
		Fires:          sched.C(),
		Settings:       svc,
		Backup:         backup.NewClient(time.Duration(cfg.Backup.TimeoutSeconds) * time.Second),
		Theme:          theme,
		BackupURL:      backupURL,
		SecretKey:      secret,
		LastBackup:     lastBackup,
		DesktopEnabled: cfg.Desktop.Notifications,
	})

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
