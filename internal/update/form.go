package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/store"
	"github.com/sandeepkv93/remindd/internal/views"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldTime
	fieldRecurrence
	fieldCategory
	fieldPriority
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"title",
	"description",
	"date (YYYY-MM-DD)",
	"time (HH:MM)",
	"recurrence (once/daily/weekly/monthly)",
	"category (work/personal/health/shopping/custom)",
	"priority (high/medium/low)",
}

type formState struct {
	inputs    [fieldCount]textinput.Model
	focusIdx  int
	editingID string
	err       string
}

func newFormState() formState {
	var f formState
	for i := range f.inputs {
		in := textinput.New()
		in.CharLimit = 200
		f.inputs[i] = in
	}
	f.inputs[fieldRecurrence].SetValue(string(model.RecurrenceOnce))
	f.inputs[fieldCategory].SetValue(string(model.CategoryPersonal))
	f.inputs[fieldPriority].SetValue(string(model.PriorityMedium))
	return f
}

func formStateFor(r model.Reminder) formState {
	f := newFormState()
	f.editingID = r.ID
	f.inputs[fieldTitle].SetValue(r.Title)
	f.inputs[fieldDescription].SetValue(r.Description)
	f.inputs[fieldDate].SetValue(r.Date)
	f.inputs[fieldTime].SetValue(r.Time)
	f.inputs[fieldRecurrence].SetValue(string(r.Recurrence))
	f.inputs[fieldCategory].SetValue(string(r.Category))
	f.inputs[fieldPriority].SetValue(string(r.Priority))
	return f
}

func (f *formState) focusField(idx int) {
	f.focusIdx = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.Screen = ScreenHome
		return m, nil
	case "tab", "shift+tab", "enter":
		if key.String() == "enter" && m.form.focusIdx == fieldCount-1 {
			return m.submitForm()
		}
		next := m.form.focusIdx + 1
		if key.String() == "shift+tab" {
			next = m.form.focusIdx - 1
		}
		if next < 0 {
			next = fieldCount - 1
		}
		if next >= fieldCount {
			next = 0
		}
		m.form.focusField(next)
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focusIdx], cmd = m.form.inputs[m.form.focusIdx].Update(key)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := &m.form
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	description := strings.TrimSpace(f.inputs[fieldDescription].Value())
	date := strings.TrimSpace(f.inputs[fieldDate].Value())
	timeOfDay := strings.TrimSpace(f.inputs[fieldTime].Value())
	recurrence := model.Recurrence(strings.ToLower(strings.TrimSpace(f.inputs[fieldRecurrence].Value())))
	category := model.Category(strings.ToLower(strings.TrimSpace(f.inputs[fieldCategory].Value())))
	priority := model.Priority(strings.ToLower(strings.TrimSpace(f.inputs[fieldPriority].Value())))

	if f.editingID != "" {
		fields := store.UpdateFields{
			Title:       &title,
			Description: &description,
			Date:        &date,
			Time:        &timeOfDay,
			Recurrence:  &recurrence,
			Category:    &category,
			Priority:    &priority,
		}
		probe := model.Reminder{
			ID: f.editingID, Title: title, Description: description,
			Date: date, Time: timeOfDay,
			Recurrence: recurrence, Category: category, Priority: priority,
			NotificationID: "probe", Active: true,
		}
		if err := probe.Validate(); err != nil {
			f.err = err.Error()
			return m, nil
		}
		if err := m.store.Update(context.Background(), f.editingID, fields); err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.Screen = ScreenHome
		m.Status = StatusBar{Text: fmt.Sprintf("updated %q", title)}
		return m, nil
	}

	now := m.now()
	r := model.Reminder{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    description,
		Date:           date,
		Time:           timeOfDay,
		Recurrence:     recurrence,
		Category:       category,
		Priority:       priority,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
		NotificationID: uuid.NewString(),
	}
	if err := r.Validate(); err != nil {
		f.err = err.Error()
		return m, nil
	}
	if err := m.store.Add(context.Background(), r); err != nil {
		f.err = err.Error()
		return m, nil
	}
	m.Screen = ScreenHome
	m.Status = StatusBar{Text: fmt.Sprintf("added %q", title)}
	return m, nil
}

func (m Model) formPanelData() views.FormPanelData {
	title := "new reminder"
	if m.form.editingID != "" {
		title = "edit reminder"
	}
	fields := make([]views.FormFieldData, 0, fieldCount)
	for i := range m.form.inputs {
		fields = append(fields, views.FormFieldData{
			Label:   fieldLabels[i],
			View:    m.form.inputs[i].View(),
			Focused: i == m.form.focusIdx,
		})
	}
	return views.FormPanelData{Title: title, Fields: fields, Error: m.form.err}
}
