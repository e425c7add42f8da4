package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/remindd/internal/storage"
)

// Theme selects the UI palette.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

var ErrInvalidTheme = errors.New("settings: invalid theme")

const (
	keyTheme      = "theme"
	keyBackupURL  = "backup_url"
	keySecretKey  = "backup_secret_key"
	keyLastBackup = "last_backup"
)

// Service exposes the small ambient state of the app on top of the settings
// table. Every accessor has a sensible zero behavior so first launch needs no
// seeding.
type Service struct {
	repo storage.Repository
}

func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// Theme returns the stored theme, or ThemeSystem when nothing is stored yet.
func (s *Service) Theme(ctx context.Context) (Theme, error) {
	v, err := s.repo.GetSetting(ctx, keyTheme)
	if errors.Is(err, storage.ErrNotFound) {
		return ThemeSystem, nil
	}
	if err != nil {
		return ThemeSystem, fmt.Errorf("settings: read theme: %w", err)
	}
	theme := Theme(v)
	if !theme.IsValid() {
		return ThemeSystem, nil
	}
	return theme, nil
}

func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	return s.repo.SetSetting(ctx, keyTheme, string(theme))
}

// BackupURL returns the configured endpoint, or "" when backup is unconfigured.
func (s *Service) BackupURL(ctx context.Context) (string, error) {
	v, err := s.repo.GetSetting(ctx, keyBackupURL)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings: read backup url: %w", err)
	}
	return v, nil
}

func (s *Service) SetBackupURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, keyBackupURL, url)
}

// EnsureSecretKey returns the stored backup secret, generating and persisting
// one on first use. The secret is generated exactly once per database and
// never rotated here.
func (s *Service) EnsureSecretKey(ctx context.Context) (string, error) {
	v, err := s.repo.GetSetting(ctx, keySecretKey)
	if err == nil && v != "" {
		return v, nil
	}
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("settings: read secret key: %w", err)
	}

	secret := uuid.NewString()
	if err := s.repo.SetSetting(ctx, keySecretKey, secret); err != nil {
		return "", fmt.Errorf("settings: persist secret key: %w", err)
	}
	return secret, nil
}

// LastBackup returns the timestamp of the last successful backup, or the zero
// time when none has happened.
func (s *Service) LastBackup(ctx context.Context) (time.Time, error) {
	v, err := s.repo.GetSetting(ctx, keyLastBackup)
	if errors.Is(err, storage.ErrNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("settings: read last backup: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, nil
	}
	return ts, nil
}

func (s *Service) SetLastBackup(ctx context.Context, ts time.Time) error {
	return s.repo.SetSetting(ctx, keyLastBackup, ts.Format(time.RFC3339Nano))
}
