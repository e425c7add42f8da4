package model

import (
	"fmt"
	"time"
)

// NextOccurrence computes the next occurrence of the reminder at or after now.
//
// A non-recurring reminder always yields its anchor, even when the anchor is
// already in the past; the scheduler decides what a stale anchor means. For
// recurring reminders with a past anchor, the anchor is advanced by the
// recurrence step until it is no longer before now. Monthly stepping uses
// calendar-month arithmetic, so an anchor on the 29th-31st may normalize into
// the following month when the target month is shorter.
func (r Reminder) NextOccurrence(now time.Time) (time.Time, error) {
	anchor, err := r.Anchor()
	if err != nil {
		return time.Time{}, err
	}
	if r.Recurrence == RecurrenceOnce || !anchor.Before(now) {
		return anchor, nil
	}

	next := anchor
	switch r.Recurrence {
	case RecurrenceDaily:
		for next.Before(now) {
			next = next.AddDate(0, 0, 1)
		}
	case RecurrenceWeekly:
		for next.Before(now) {
			next = next.AddDate(0, 0, 7)
		}
	case RecurrenceMonthly:
		for next.Before(now) {
			next = next.AddDate(0, 1, 0)
		}
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRecurrence, r.Recurrence)
	}
	return next, nil
}
