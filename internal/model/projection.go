package model

import (
	"sort"
	"strings"
	"time"
)

type FilterStatus string

const (
	FilterAll    FilterStatus = "all"
	FilterActive FilterStatus = "active"
	FilterPaused FilterStatus = "paused"
)

func (f FilterStatus) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterPaused:
		return true
	default:
		return false
	}
}

type SortBy string

const (
	SortDateAsc     SortBy = "date-asc"
	SortDateDesc    SortBy = "date-desc"
	SortPriority    SortBy = "priority"
	SortCreatedDesc SortBy = "created-desc"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortDateAsc, SortDateDesc, SortPriority, SortCreatedDesc:
		return true
	default:
		return false
	}
}

type Filters struct {
	Status FilterStatus
}

// Project derives the displayed sequence from the full collection: status
// filter, then case-insensitive substring search over title and description,
// then sort. Pure function; the input slice is never mutated.
func Project(reminders []Reminder, filters Filters, query string, sortBy SortBy) []Reminder {
	out := make([]Reminder, 0, len(reminders))
	for _, r := range reminders {
		if filters.Status != FilterAll && filters.Status != "" {
			if r.Active != (filters.Status == FilterActive) {
				continue
			}
		}
		out = append(out, r)
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		matched := out[:0]
		for _, r := range out {
			if strings.Contains(strings.ToLower(r.Title), q) ||
				strings.Contains(strings.ToLower(r.Description), q) {
				matched = append(matched, r)
			}
		}
		out = matched
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch sortBy {
		case SortDateAsc:
			return anchorOrZero(out[i]).Before(anchorOrZero(out[j]))
		case SortDateDesc:
			return anchorOrZero(out[j]).Before(anchorOrZero(out[i]))
		case SortPriority:
			return out[i].Priority.Weight() > out[j].Priority.Weight()
		case SortCreatedDesc:
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		default:
			return false
		}
	})
	return out
}

func anchorOrZero(r Reminder) time.Time {
	anchor, err := r.Anchor()
	if err != nil {
		return time.Time{}
	}
	return anchor
}
