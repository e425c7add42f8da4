package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/remindd/internal/commands"
	"github.com/sandeepkv93/remindd/internal/model"
)

func (m Model) handlePaletteKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.palette = false
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.palette = false
		return m.runCommand(input)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(key)
	return m, cmd
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	// Backup produces an async tea.Cmd, so it bypasses the handler table.
	if cmd.Type == commands.TypeBackup {
		return m.startBackup()
	}

	handlers := commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			return m.quickAdd(args.Title)
		},
		Search: func(args commands.SearchArgs) (commands.Result, error) {
			m.query = args.Query
			m.cursor = 0
			if args.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("searching %q", args.Query)}, nil
		},
		Filter: func(args commands.FilterArgs) (commands.Result, error) {
			m.filters.Status = args.Status
			m.cursor = 0
			return commands.Result{Message: fmt.Sprintf("filter: %s", args.Status)}, nil
		},
		Sort: func(args commands.SortArgs) (commands.Result, error) {
			m.sortBy = args.By
			return commands.Result{Message: fmt.Sprintf("sort: %s", args.By)}, nil
		},
		Theme: func(args commands.ThemeArgs) (commands.Result, error) {
			if err := m.settings.SetTheme(context.Background(), args.Theme); err != nil {
				return commands.Result{}, err
			}
			m.applyTheme(args.Theme)
			return commands.Result{Message: fmt.Sprintf("theme: %s", args.Theme)}, nil
		},
	}

	result, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: result.Message}
	return m, nil
}

// quickAdd creates a reminder from a bare title, anchored an hour from now.
func (m *Model) quickAdd(title string) (commands.Result, error) {
	now := m.now()
	anchor := now.Add(time.Hour)
	r := model.Reminder{
		ID:             uuid.NewString(),
		Title:          title,
		Date:           anchor.Format(model.DateLayout),
		Time:           anchor.Format(model.TimeLayout),
		Recurrence:     model.RecurrenceOnce,
		Category:       model.CategoryPersonal,
		Priority:       model.PriorityMedium,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
		NotificationID: uuid.NewString(),
	}
	if err := m.store.Add(context.Background(), r); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("added %q", title)}, nil
}
