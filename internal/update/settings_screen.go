package update

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/remindd/internal/settings"
	"github.com/sandeepkv93/remindd/internal/views"
)

func (m Model) handleSettingsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingURL {
		switch key.String() {
		case "esc":
			m.editingURL = false
			return m, nil
		case "enter":
			url := m.urlInput.Value()
			if err := m.settings.SetBackupURL(context.Background(), url); err != nil {
				m.Status = StatusBar{Text: fmt.Sprintf("save url failed: %v", err), IsError: true}
				return m, nil
			}
			m.backupURL = url
			m.editingURL = false
			m.Status = StatusBar{Text: "backup url saved"}
			return m, nil
		}
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		m.Screen = ScreenHome
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "t":
		return m.cycleTheme()
	case "u":
		m.editingURL = true
		m.urlInput.SetValue(m.backupURL)
		m.urlInput.Focus()
		return m, nil
	case "B":
		return m.startBackup()
	}
	return m, nil
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := settings.ThemeLight
	switch m.theme {
	case settings.ThemeLight:
		next = settings.ThemeDark
	case settings.ThemeDark:
		next = settings.ThemeSystem
	}
	if err := m.settings.SetTheme(context.Background(), next); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save theme failed: %v", err), IsError: true}
		return m, nil
	}
	m.applyTheme(next)
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", next)}
	return m, nil
}

func (m *Model) applyTheme(theme settings.Theme) {
	m.theme = theme
	m.styles = views.NewStyles(string(theme))
}

func (m Model) startBackup() (tea.Model, tea.Cmd) {
	if m.backupURL == "" {
		m.Status = StatusBar{Text: "backup url not configured", IsError: true}
		return m, nil
	}
	if m.backupRunning {
		return m, nil
	}
	m.backupRunning = true
	m.Status = StatusBar{Text: "backup started"}

	client := m.backup
	endpoint := m.backupURL
	secret := m.secretKey
	reminders := m.store.Reminders()
	nowFn := m.now
	return m, tea.Batch(m.backupSpinner.Tick, func() tea.Msg {
		msg, err := client.Send(context.Background(), endpoint, secret, reminders)
		if err != nil {
			log.Printf("[update] backup: %v", err)
			return BackupDoneMsg{Err: err}
		}
		return BackupDoneMsg{Message: msg, At: nowFn()}
	})
}

func (m Model) settingsPanelData() views.SettingsPanelData {
	lastBackup := ""
	if !m.lastBackup.IsZero() {
		lastBackup = m.lastBackup.Format(time.RFC1123)
	}
	return views.SettingsPanelData{
		Theme:          string(m.theme),
		BackupURL:      m.backupURL,
		SecretKey:      m.secretKey,
		LastBackup:     lastBackup,
		EditingURL:     m.editingURL,
		URLInputView:   m.urlInput.View(),
		BackupRunning:  m.backupRunning,
		BackupSpinner:  m.backupSpinner.View(),
		DesktopEnabled: m.desktopEnabled,
	}
}
