package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRecurrence = errors.New("model: invalid recurrence")
	ErrInvalidCategory   = errors.New("model: invalid category")
	ErrInvalidPriority   = errors.New("model: invalid priority")
	ErrInvalidAnchor     = errors.New("model: invalid anchor date or time")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryShopping Category = "shopping"
	CategoryCustom   Category = "custom"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryShopping, CategoryCustom:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Weight is the sort ordering weight: high outranks medium outranks low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Reminder is the central entity. Date and Time together define the anchor
// occurrence; recurrence is computed relative to the anchor, never stored as
// expanded instances. JSON field names are the persisted/backup wire names.
type Reminder struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Recurrence     Recurrence `json:"recurrence"`
	Category       Category   `json:"category"`
	Priority       Priority   `json:"priority"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	NotificationID string     `json:"notificationId"`
}

// Anchor combines Date and Time into the reminder's anchor instant in local
// time.
func (r Reminder) Anchor() (time.Time, error) {
	anchor, err := time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q", ErrInvalidAnchor, r.Date, r.Time)
	}
	return anchor, nil
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reminder id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: reminder title is required")
	}
	if _, err := r.Anchor(); err != nil {
		return err
	}
	if !r.Recurrence.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrence, r.Recurrence)
	}
	if !r.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, r.Category)
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, r.Priority)
	}
	if strings.TrimSpace(r.NotificationID) == "" {
		return errors.New("model: reminder notification id is required")
	}
	if r.UpdatedAt.Before(r.CreatedAt) {
		return errors.New("model: updated_at precedes created_at")
	}
	return nil
}
