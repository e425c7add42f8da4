package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/views"
)

// visible derives the displayed sequence from the store snapshot.
func (m Model) visible() []model.Reminder {
	return model.Project(m.store.Reminders(), m.filters, m.query, m.sortBy)
}

func (m Model) selected() (model.Reminder, bool) {
	rows := m.visible()
	if len(rows) == 0 {
		return model.Reminder{}, false
	}
	idx := m.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	return rows[idx], true
}

func (m Model) handleHomeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "j", "down":
		if rows := m.visible(); m.cursor < len(rows)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case m.Keys.New:
		m.form = newFormState()
		m.form.focusField(0)
		m.Screen = ScreenForm
		return m, nil
	case m.Keys.Edit:
		r, ok := m.selected()
		if !ok {
			m.Status = StatusBar{Text: "nothing to edit"}
			return m, nil
		}
		m.form = formStateFor(r)
		m.form.focusField(0)
		m.Screen = ScreenForm
		return m, nil
	case m.Keys.Delete:
		r, ok := m.selected()
		if !ok {
			m.Status = StatusBar{Text: "nothing to delete"}
			return m, nil
		}
		if err := m.store.Delete(context.Background(), r.ID); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("delete failed: %v", err), IsError: true}
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", r.Title)}
		return m, nil
	case m.Keys.Pause:
		r, ok := m.selected()
		if !ok {
			m.Status = StatusBar{Text: "nothing to pause"}
			return m, nil
		}
		if err := m.store.TogglePause(context.Background(), r.ID); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("toggle failed: %v", err), IsError: true}
			return m, nil
		}
		if r.Active {
			m.Status = StatusBar{Text: fmt.Sprintf("paused %q", r.Title)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("resumed %q", r.Title)}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) homePanelData() views.HomePanelData {
	all := m.store.Reminders()
	rows := model.Project(all, m.filters, m.query, m.sortBy)
	now := m.now()

	selectedID := ""
	if r, ok := m.selected(); ok {
		selectedID = r.ID
	}

	out := make([]views.ReminderRowData, 0, len(rows))
	for _, r := range rows {
		next := ""
		if r.Active {
			if occ, err := r.NextOccurrence(now); err == nil && !occ.Before(now) {
				next = views.FormatRelative(occ, now)
			}
		}
		out = append(out, views.ReminderRowData{
			ID:         r.ID,
			Title:      r.Title,
			When:       r.Date + " " + r.Time,
			Next:       next,
			Recurrence: string(r.Recurrence),
			Category:   string(r.Category),
			Priority:   string(r.Priority),
			Active:     r.Active,
		})
	}
	return views.HomePanelData{
		Rows:       out,
		SelectedID: selectedID,
		Filter:     string(m.filters.Status),
		Sort:       string(m.sortBy),
		Query:      m.query,
		Total:      len(all),
	}
}
