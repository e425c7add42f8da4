package views

import "time"

// FormatRelative renders an occurrence as a short relative phrase: "today" or
// "tomorrow" or a weekday name within the coming week, each with the clock
// time. Anything further out, or in the past, falls back to the absolute
// form.
func FormatRelative(t, now time.Time) string {
	clock := t.Format("15:04")
	day := midnight(t)
	today := midnight(now.In(t.Location()))

	switch days := int(day.Sub(today).Hours() / 24); {
	case days == 0:
		return "today at " + clock
	case days == 1:
		return "tomorrow at " + clock
	case days > 1 && days < 7:
		return t.Weekday().String() + " at " + clock
	}
	return t.Format("2006-01-02 15:04")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
