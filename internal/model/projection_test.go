package model

import (
	"reflect"
	"testing"
	"time"
)

func projReminder(id, title, desc, date string, active bool, prio Priority, createdAt time.Time) Reminder {
	return Reminder{
		ID:             id,
		Title:          title,
		Description:    desc,
		Date:           date,
		Time:           "09:00",
		Recurrence:     RecurrenceOnce,
		Category:       CategoryPersonal,
		Priority:       prio,
		Active:         active,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
		NotificationID: "n-" + id,
	}
}

func TestProjectFiltersByStatus(t *testing.T) {
	created := time.Now()
	collection := []Reminder{
		projReminder("a", "Active one", "", "2024-06-01", true, PriorityLow, created),
		projReminder("b", "Paused one", "", "2024-06-02", false, PriorityLow, created),
	}

	got := Project(collection, Filters{Status: FilterActive}, "", SortDateAsc)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only active reminder, got %#v", got)
	}

	got = Project(collection, Filters{Status: FilterPaused}, "", SortDateAsc)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only paused reminder, got %#v", got)
	}

	got = Project(collection, Filters{Status: FilterAll}, "", SortDateAsc)
	if len(got) != 2 {
		t.Fatalf("expected both reminders, got %#v", got)
	}
}

func TestProjectSearchesTitleAndDescription(t *testing.T) {
	created := time.Now()
	collection := []Reminder{
		projReminder("a", "Pay rent", "", "2024-06-01", true, PriorityLow, created),
		projReminder("b", "Groceries", "buy RENT movie", "2024-06-02", true, PriorityLow, created),
		projReminder("c", "Dentist", "checkup", "2024-06-03", true, PriorityLow, created),
	}

	got := Project(collection, Filters{Status: FilterAll}, "rent", SortDateAsc)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected search result: %#v", got)
	}

	got = Project(collection, Filters{Status: FilterAll}, "   ", SortDateAsc)
	if len(got) != 3 {
		t.Fatalf("blank query should pass everything through, got %d", len(got))
	}
}

func TestProjectSortOrders(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	collection := []Reminder{
		projReminder("mid", "B", "", "2024-06-02", true, PriorityMedium, base.Add(2*time.Hour)),
		projReminder("old", "A", "", "2024-06-01", true, PriorityLow, base.Add(time.Hour)),
		projReminder("new", "C", "", "2024-06-03", true, PriorityHigh, base.Add(3*time.Hour)),
	}

	ids := func(rs []Reminder) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	cases := []struct {
		sortBy SortBy
		want   []string
	}{
		{SortDateAsc, []string{"old", "mid", "new"}},
		{SortDateDesc, []string{"new", "mid", "old"}},
		{SortPriority, []string{"new", "mid", "old"}},
		{SortCreatedDesc, []string{"new", "mid", "old"}},
	}
	for _, tc := range cases {
		got := ids(Project(collection, Filters{Status: FilterAll}, "", tc.sortBy))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("sort %s: got %v want %v", tc.sortBy, got, tc.want)
		}
	}
}

func TestProjectIsDeterministicAndPure(t *testing.T) {
	created := time.Now()
	collection := []Reminder{
		projReminder("a", "One", "", "2024-06-02", true, PriorityLow, created),
		projReminder("b", "Two", "", "2024-06-01", false, PriorityHigh, created),
	}
	snapshot := make([]Reminder, len(collection))
	copy(snapshot, collection)

	first := Project(collection, Filters{Status: FilterAll}, "", SortDateAsc)
	second := Project(collection, Filters{Status: FilterAll}, "", SortDateAsc)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection not deterministic: %#v vs %#v", first, second)
	}
	if !reflect.DeepEqual(collection, snapshot) {
		t.Fatalf("projection mutated its input: %#v", collection)
	}
}
