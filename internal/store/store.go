package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/storage"
)

var ErrDuplicateID = errors.New("store: duplicate reminder id")

// Scheduler is the slice of the notification scheduler the store drives.
type Scheduler interface {
	Schedule(r model.Reminder) error
	Cancel(notificationID string)
	Reschedule(r model.Reminder) error
}

// UpdateFields is a partial update; nil fields are left untouched.
type UpdateFields struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Recurrence  *model.Recurrence
	Category    *model.Category
	Priority    *model.Priority
	Active      *bool
}

// Store owns the reminder collection. Every mutation computes a fresh
// collection, publishes it, persists it, then applies the scheduler effect,
// in that order. A failed persistence write is reported but never rolls the
// in-memory collection back; the next successful save repairs the gap.
// Mutations serialize on the store mutex, so no two read-modify-write cycles
// interleave.
type Store struct {
	mu        sync.Mutex
	reminders []model.Reminder
	repo      storage.Repository
	sched     Scheduler
	now       func() time.Time
}

func New(repo storage.Repository, sched Scheduler) *Store {
	return &Store{
		reminders: []model.Reminder{},
		repo:      repo,
		sched:     sched,
		now:       time.Now,
	}
}

// Load replaces the in-memory collection with the persisted one. Corrupt
// persisted data surfaces here as an empty collection, not an error.
func (s *Store) Load(ctx context.Context) error {
	reminders, err := s.repo.LoadReminders(ctx)
	if err != nil {
		return fmt.Errorf("store: load reminders: %w", err)
	}
	s.mu.Lock()
	s.reminders = reminders
	s.mu.Unlock()
	return nil
}

// Reminders returns a snapshot copy of the full collection.
func (s *Store) Reminders() []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Add appends a reminder with a previously unseen id, persists, and arms its
// notification. The only reported failure is the persistence write.
func (s *Store) Add(ctx context.Context, r model.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(r.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
	}

	next := make([]model.Reminder, 0, len(s.reminders)+1)
	next = append(next, s.reminders...)
	next = append(next, r)
	s.reminders = next

	saveErr := s.repo.SaveReminders(ctx, next)
	if err := s.sched.Schedule(r); err != nil {
		log.Printf("[store] schedule %q: %v", r.Title, err)
	}
	return saveErr
}

// Update merges the given fields into the reminder, stamps updated_at,
// persists, and reschedules. An unknown id is a benign race (the reminder
// may have been deleted concurrently) and is silently ignored.
func (s *Store) Update(ctx context.Context, id string, fields UpdateFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	next := make([]model.Reminder, len(s.reminders))
	copy(next, s.reminders)
	updated := applyFields(next[idx], fields)
	updated.UpdatedAt = s.now()
	next[idx] = updated
	s.reminders = next

	saveErr := s.repo.SaveReminders(ctx, next)
	if !updated.Active {
		s.sched.Cancel(updated.NotificationID)
		return saveErr
	}
	if err := s.sched.Reschedule(updated); err != nil {
		log.Printf("[store] reschedule %q: %v", updated.Title, err)
	}
	return saveErr
}

// Delete removes the reminder and cancels its pending notification. An
// unknown id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}
	removed := s.reminders[idx]

	next := make([]model.Reminder, 0, len(s.reminders)-1)
	next = append(next, s.reminders[:idx]...)
	next = append(next, s.reminders[idx+1:]...)
	s.reminders = next

	saveErr := s.repo.SaveReminders(ctx, next)
	s.sched.Cancel(removed.NotificationID)
	return saveErr
}

// TogglePause flips the active flag: newly active reminders are scheduled,
// newly paused ones have their pending notification cancelled.
func (s *Store) TogglePause(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	next := make([]model.Reminder, len(s.reminders))
	copy(next, s.reminders)
	toggled := next[idx]
	toggled.Active = !toggled.Active
	toggled.UpdatedAt = s.now()
	next[idx] = toggled
	s.reminders = next

	saveErr := s.repo.SaveReminders(ctx, next)
	if toggled.Active {
		if err := s.sched.Schedule(toggled); err != nil {
			log.Printf("[store] schedule %q: %v", toggled.Title, err)
		}
	} else {
		s.sched.Cancel(toggled.NotificationID)
	}
	return saveErr
}

func (s *Store) indexLocked(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func applyFields(r model.Reminder, fields UpdateFields) model.Reminder {
	if fields.Title != nil {
		r.Title = *fields.Title
	}
	if fields.Description != nil {
		r.Description = *fields.Description
	}
	if fields.Date != nil {
		r.Date = *fields.Date
	}
	if fields.Time != nil {
		r.Time = *fields.Time
	}
	if fields.Recurrence != nil {
		r.Recurrence = *fields.Recurrence
	}
	if fields.Category != nil {
		r.Category = *fields.Category
	}
	if fields.Priority != nil {
		r.Priority = *fields.Priority
	}
	if fields.Active != nil {
		r.Active = *fields.Active
	}
	return r
}
