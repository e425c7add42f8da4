package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/storage"
)

type fakeRepo struct {
	values map[string]string
	sets   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: make(map[string]string)}
}

func (f *fakeRepo) LoadReminders(ctx context.Context) ([]model.Reminder, error) {
	return []model.Reminder{}, nil
}

func (f *fakeRepo) SaveReminders(ctx context.Context, reminders []model.Reminder) error {
	return nil
}

func (f *fakeRepo) GetSetting(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (f *fakeRepo) SetSetting(ctx context.Context, key, value string) error {
	f.values[key] = value
	f.sets++
	return nil
}

func (f *fakeRepo) Close() error { return nil }

func TestThemeDefaultsToSystem(t *testing.T) {
	svc := NewService(newFakeRepo())
	theme, err := svc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeSystem {
		t.Fatalf("expected system default, got %q", theme)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	if err := svc.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	theme, err := svc.Theme(ctx)
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("expected dark, got %q", theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	svc := NewService(newFakeRepo())
	if err := svc.SetTheme(context.Background(), Theme("neon")); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestThemeFallsBackOnGarbageValue(t *testing.T) {
	repo := newFakeRepo()
	repo.values["theme"] = "mauve"
	theme, err := NewService(repo).Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if theme != ThemeSystem {
		t.Fatalf("expected system fallback, got %q", theme)
	}
}

func TestEnsureSecretKeyGeneratesOnce(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.EnsureSecretKey(ctx)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if first == "" {
		t.Fatal("expected a generated secret")
	}
	second, err := svc.EnsureSecretKey(ctx)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if second != first {
		t.Fatalf("secret changed across calls: %q vs %q", first, second)
	}
	if repo.sets != 1 {
		t.Fatalf("expected exactly one persist, got %d", repo.sets)
	}
}

func TestLastBackupZeroWhenUnset(t *testing.T) {
	ts, err := NewService(newFakeRepo()).LastBackup(context.Background())
	if err != nil {
		t.Fatalf("last backup: %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero time, got %s", ts)
	}
}

func TestLastBackupRoundTrip(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	if err := svc.SetLastBackup(ctx, want); err != nil {
		t.Fatalf("set last backup: %v", err)
	}
	got, err := svc.LastBackup(ctx)
	if err != nil {
		t.Fatalf("last backup: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestBackupURLRoundTrip(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	url, err := svc.BackupURL(ctx)
	if err != nil || url != "" {
		t.Fatalf("expected empty default, got %q err=%v", url, err)
	}
	if err := svc.SetBackupURL(ctx, "https://example.com/backup"); err != nil {
		t.Fatalf("set url: %v", err)
	}
	url, err = svc.BackupURL(ctx)
	if err != nil {
		t.Fatalf("backup url: %v", err)
	}
	if url != "https://example.com/backup" {
		t.Fatalf("unexpected url %q", url)
	}
}
