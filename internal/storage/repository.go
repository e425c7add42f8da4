package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/remindd/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the persistence collaborator. The reminder collection is
// saved and loaded whole; settings are a flat key-value table for the few
// bits of ambient state (theme, backup endpoint, secret key, last backup).
type Repository interface {
	LoadReminders(ctx context.Context) ([]model.Reminder, error)
	SaveReminders(ctx context.Context, reminders []model.Reminder) error

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error

	Close() error
}
