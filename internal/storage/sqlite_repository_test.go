package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "remindd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo, db
}

func storedReminder(id string) model.Reminder {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return model.Reminder{
		ID:             id,
		Title:          "Reminder " + id,
		Description:    "details for " + id,
		Date:           "2024-06-01",
		Time:           "09:00",
		Recurrence:     model.RecurrenceWeekly,
		Category:       model.CategoryWork,
		Priority:       model.PriorityHigh,
		Active:         true,
		CreatedAt:      created,
		UpdatedAt:      created.Add(time.Minute),
		NotificationID: "notif-" + id,
	}
}

func TestSaveAndLoadReminders(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	in := []model.Reminder{storedReminder("a"), storedReminder("b")}
	if err := repo.SaveReminders(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadReminders(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(got))
	}
	byID := map[string]model.Reminder{got[0].ID: got[0], got[1].ID: got[1]}
	a := byID["a"]
	if a.Title != "Reminder a" || a.Recurrence != model.RecurrenceWeekly || !a.Active {
		t.Fatalf("round-trip mismatch: %#v", a)
	}
	if !a.CreatedAt.Equal(in[0].CreatedAt) || !a.UpdatedAt.Equal(in[0].UpdatedAt) {
		t.Fatalf("timestamp mismatch: %#v", a)
	}
}

func TestSaveRemindersReplacesWholeCollection(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	if err := repo.SaveReminders(ctx, []model.Reminder{storedReminder("a"), storedReminder("b")}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveReminders(ctx, []model.Reminder{storedReminder("c")}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.LoadReminders(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("save should replace collection, got %#v", got)
	}
}

func TestLoadRemindersEmptyDatabase(t *testing.T) {
	repo, _ := setupRepo(t)
	got, err := repo.LoadReminders(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %#v", got)
	}
}

func TestLoadRemindersRecoversFromCorruptRows(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	// A row with a garbage timestamp simulates corrupted persisted data.
	if _, err := db.Exec(`
		INSERT INTO reminders (id, title, description, date, time, recurrence, category, priority, active, created_at, updated_at, notification_id)
		VALUES ('bad', 'Broken', '', '2024-06-01', '09:00', 'daily', 'work', 'high', 1, 'garbage', 'garbage', 'notif-bad')`); err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	got, err := repo.LoadReminders(ctx)
	if err != nil {
		t.Fatalf("corrupt data must not propagate an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection on corruption, got %#v", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.GetSetting(ctx, "theme"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := repo.SetSetting(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.SetSetting(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := repo.GetSetting(ctx, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "light" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}
