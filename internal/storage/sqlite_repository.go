package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/remindd/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadReminders returns the stored collection. Unreadable rows mean the data
// is corrupt; availability wins over surfacing corruption, so the whole
// collection resets to empty with a logged warning instead of failing.
func (r *SQLiteRepository) LoadReminders(ctx context.Context) ([]model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, date, time, recurrence, category, priority, active, created_at, updated_at, notification_id
		FROM reminders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reminder, 0)
	for rows.Next() {
		item, scanErr := scanReminder(rows)
		if scanErr != nil {
			log.Printf("[storage] corrupt reminder data, starting fresh: %v", scanErr)
			return []model.Reminder{}, nil
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[storage] corrupt reminder data, starting fresh: %v", err)
		return []model.Reminder{}, nil
	}
	return out, nil
}

// SaveReminders replaces the stored collection with the given one in a single
// transaction, mirroring a full-file write.
func (r *SQLiteRepository) SaveReminders(ctx context.Context, reminders []model.Reminder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reminders`); err != nil {
		return err
	}
	for _, item := range reminders {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO reminders (id, title, description, date, time, recurrence, category, priority, active, created_at, updated_at, notification_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.Title, item.Description, item.Date, item.Time,
			string(item.Recurrence), string(item.Category), string(item.Priority),
			boolInt(item.Active), mustTime(item.CreatedAt), mustTime(item.UpdatedAt), item.NotificationID,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReminder(s scanner) (model.Reminder, error) {
	var out model.Reminder
	var recurrence, category, priority string
	var active int
	var created, updated string
	if err := s.Scan(&out.ID, &out.Title, &out.Description, &out.Date, &out.Time,
		&recurrence, &category, &priority, &active, &created, &updated, &out.NotificationID); err != nil {
		return model.Reminder{}, err
	}
	createdAt, err := time.Parse(sqliteTimeLayout, created)
	if err != nil {
		return model.Reminder{}, err
	}
	updatedAt, err := time.Parse(sqliteTimeLayout, updated)
	if err != nil {
		return model.Reminder{}, err
	}
	out.Recurrence = model.Recurrence(recurrence)
	out.Category = model.Category(category)
	out.Priority = model.Priority(priority)
	out.Active = active == 1
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	if !out.Recurrence.IsValid() {
		return model.Reminder{}, fmt.Errorf("%w: %q", model.ErrInvalidRecurrence, recurrence)
	}
	return out, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
