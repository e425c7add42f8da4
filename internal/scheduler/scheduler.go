package scheduler

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/notify"
)

var ErrStopped = errors.New("scheduler: stopped")

// FireEvent is pushed on the event channel after a reminder delivers, so the
// UI can surface it. Sends are non-blocking; a slow consumer drops events
// rather than stalling delivery.
type FireEvent struct {
	ReminderID     string
	NotificationID string
	Title          string
	FiredAt        time.Time
}

type task struct {
	timer *time.Timer
	gen   uint64
}

// Scheduler owns one deferred delivery task per notification id. Arming
// always cancels the previous task for the same id first, so at most one
// live timer exists per id at any instant. A fired recurring reminder re-arms
// itself for the following occurrence; a fired one-shot is consumed.
type Scheduler struct {
	mu         sync.Mutex
	pending    map[string]*task
	gen        uint64
	stopped    bool
	notifier   notify.Notifier
	permission notify.Permission
	now        func() time.Time
	out        chan FireEvent
	dropped    uint64
}

func New(notifier notify.Notifier, bufferSize int) *Scheduler {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Scheduler{
		pending:    make(map[string]*task),
		notifier:   notifier,
		permission: notifier.RequestPermission(),
		now:        time.Now,
		out:        make(chan FireEvent, bufferSize),
	}
}

func (s *Scheduler) C() <-chan FireEvent {
	return s.out
}

func (s *Scheduler) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Pending reports the number of live deferred tasks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Schedule arms the reminder's next occurrence. Inactive reminders, missing
// delivery permission, and stale one-shot anchors all degrade to a logged
// no-op.
func (s *Scheduler) Schedule(r model.Reminder) error {
	if !r.Active {
		return nil
	}
	if s.permission != notify.PermissionGranted {
		log.Printf("[scheduler] delivery permission %q, not arming %q", s.permission, r.Title)
		return nil
	}

	next, err := r.NextOccurrence(s.now())
	if err != nil {
		return err
	}
	delay := next.Sub(s.now())
	if delay < 0 {
		if r.Recurrence == model.RecurrenceOnce {
			log.Printf("[scheduler] skipping past reminder %q (was due %s)", r.Title, next.Format(time.RFC3339))
			return nil
		}
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	s.cancelLocked(r.NotificationID)
	s.gen++
	gen := s.gen
	t := &task{gen: gen}
	t.timer = time.AfterFunc(delay, func() { s.fire(r, gen) })
	s.pending[r.NotificationID] = t
	return nil
}

// Cancel invalidates any pending task for the notification id. Cancelling an
// unknown or already-fired id is not an error.
func (s *Scheduler) Cancel(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(notificationID)
}

// Reschedule replaces whatever task the reminder currently has with one
// computed from its current fields.
func (s *Scheduler) Reschedule(r model.Reminder) error {
	s.Cancel(r.NotificationID)
	return s.Schedule(r)
}

// ScheduleAll is the startup reconciliation pass: deferred tasks do not
// survive a restart, so scheduling state is rebuilt from the persisted
// collection. Individual failures are logged, never fatal.
func (s *Scheduler) ScheduleAll(reminders []model.Reminder) {
	active := 0
	for _, r := range reminders {
		if !r.Active {
			continue
		}
		active++
		if err := s.Schedule(r); err != nil {
			log.Printf("[scheduler] arm %q: %v", r.Title, err)
		}
	}
	log.Printf("[scheduler] reconciled %d active reminders", active)
}

// Stop cancels every pending task. Tasks already delivering finish; their
// events may still land on the channel.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	for id := range s.pending {
		s.cancelLocked(id)
	}
}

func (s *Scheduler) cancelLocked(notificationID string) {
	t, ok := s.pending[notificationID]
	if !ok {
		return
	}
	t.timer.Stop()
	delete(s.pending, notificationID)
}

func (s *Scheduler) fire(r model.Reminder, gen uint64) {
	s.mu.Lock()
	t, ok := s.pending[r.NotificationID]
	if !ok || t.gen != gen || s.stopped {
		// Cancelled or superseded between the timer firing and us running.
		s.mu.Unlock()
		return
	}
	delete(s.pending, r.NotificationID)
	s.mu.Unlock()

	firedAt := s.now()
	if err := s.notifier.Deliver(r.Title, r.Description, r.NotificationID); err != nil {
		log.Printf("[scheduler] deliver %q: %v", r.Title, err)
	}

	// Fired -> Scheduled: a recurring reminder re-arms before the event is
	// published. By the time this callback runs the clock has passed the
	// occurrence, so Schedule arms the following one.
	if r.Recurrence != model.RecurrenceOnce {
		if err := s.Schedule(r); err != nil && !errors.Is(err, ErrStopped) {
			log.Printf("[scheduler] re-arm %q: %v", r.Title, err)
		}
	}

	ev := FireEvent{
		ReminderID:     r.ID,
		NotificationID: r.NotificationID,
		Title:          r.Title,
		FiredAt:        firedAt,
	}
	select {
	case s.out <- ev:
	default:
		atomic.AddUint64(&s.dropped, 1)
	}
}
