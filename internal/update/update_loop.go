package update

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/remindd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.fires != nil {
		return waitForFireCmd(m.fires)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.backupRunning {
			var cmd tea.Cmd
			m.backupSpinner, cmd = m.backupSpinner.Update(typed)
			return m, cmd
		}
	case FireMsg:
		m.lastFire = &typed.Event
		m.Status = StatusBar{Text: fmt.Sprintf("reminder fired: %s", typed.Event.Title)}
		if m.fires != nil {
			return m, waitForFireCmd(m.fires)
		}
		return m, nil
	case BackupDoneMsg:
		m.backupRunning = false
		if typed.Err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("backup error: %v", typed.Err), IsError: true}
			return m, nil
		}
		m.lastBackup = typed.At
		if err := m.settings.SetLastBackup(context.Background(), typed.At); err != nil {
			log.Printf("[update] persist last backup: %v", err)
		}
		m.Status = StatusBar{Text: typed.Message}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.palette {
		return m.handlePaletteKey(key)
	}
	if m.Screen == ScreenForm {
		return m.handleFormKey(key)
	}
	if m.Screen == ScreenSettings {
		return m.handleSettingsKey(key)
	}

	switch key.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "/":
		m.palette = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	case m.Keys.Help:
		if m.Screen == ScreenHelp {
			m.Screen = ScreenHome
		} else {
			m.Screen = ScreenHelp
		}
		return m, nil
	case m.Keys.Settings:
		m.Screen = ScreenSettings
		return m, nil
	case "esc":
		m.Screen = ScreenHome
		return m, nil
	}

	if m.Screen == ScreenHome {
		return m.handleHomeKey(key)
	}
	return m, nil
}

func (m Model) View() string {
	body := ""
	switch m.Screen {
	case ScreenForm:
		body = views.RenderFormPanel(m.formPanelData())
	case ScreenSettings:
		body = views.RenderSettingsPanel(m.settingsPanelData())
	case ScreenHelp:
		body = views.RenderHelpPanel(m.helpPanelData(), m.styles)
	default:
		body = views.RenderHomePanel(m.homePanelData(), m.styles)
	}
	if m.palette {
		body += "\n\n" + views.RenderCommandPalette(true, m.commandInput.Value())
	}
	if m.lastFire != nil {
		body += "\n\n" + views.RenderNotification("reminder", fmt.Sprintf("%s @ %s", m.lastFire.Title, m.lastFire.FiredAt.Format("15:04:05")))
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		} else {
			status = "status: " + m.Status.Text
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("remindd | %s | theme: %s", m.Screen, m.theme),
		Body:       body,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s new | %s edit | %s delete | %s pause | %s settings | / cmd | %s help | %s quit",
			m.Keys.New, m.Keys.Edit, m.Keys.Delete, m.Keys.Pause, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	}, m.styles)
}

func (m Model) helpPanelData() views.HelpPanelData {
	return views.HelpPanelData{
		Bindings: []string{
			"`j/k` move selection",
			"`n` new reminder",
			"`e` edit selected reminder",
			"`d` delete selected reminder",
			"`p` pause/resume selected reminder",
			"`s` settings",
			"`/` command palette (add, search, filter, sort, backup, theme)",
			"`?` toggle this help",
			"`q` quit",
		},
		Notes: "Recurring reminders re-arm themselves after each delivery.",
	}
}
