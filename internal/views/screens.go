package views

import (
	"fmt"
	"strings"
)

type ReminderRowData struct {
	ID         string
	Title      string
	When       string
	Next       string
	Recurrence string
	Category   string
	Priority   string
	Active     bool
}

type HomePanelData struct {
	Rows       []ReminderRowData
	SelectedID string
	Filter     string
	Sort       string
	Query      string
	Total      int
}

type FormFieldData struct {
	Label   string
	View    string
	Focused bool
}

type FormPanelData struct {
	Title  string
	Fields []FormFieldData
	Error  string
}

type SettingsPanelData struct {
	Theme          string
	BackupURL      string
	SecretKey      string
	LastBackup     string
	EditingURL     bool
	URLInputView   string
	BackupRunning  bool
	BackupSpinner  string
	DesktopEnabled bool
}

type HelpPanelData struct {
	Bindings []string
	Notes    string
}

func RenderHomePanel(data HomePanelData, st Styles) string {
	var b strings.Builder
	b.WriteString("reminders:\n")
	b.WriteString(fmt.Sprintf("filter: %s | sort: %s", data.Filter, data.Sort))
	if data.Query != "" {
		b.WriteString(fmt.Sprintf(" | search: %q", data.Query))
	}
	b.WriteString(fmt.Sprintf(" | showing %d of %d\n", len(data.Rows), data.Total))
	b.WriteString("actions: [j/k]move [n]new [e]edit [d]delete [p]pause [/]cmd\n")

	if len(data.Rows) == 0 {
		b.WriteString("\n(no reminders match)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		title := row.Title
		if row.ID == data.SelectedID {
			cursor = ">"
			title = st.Accent.Render(title)
		}
		var line strings.Builder
		line.WriteString(fmt.Sprintf("%s %s %s @%s", cursor, priorityBadge(row.Priority), title, row.When))
		if row.Recurrence != "once" {
			line.WriteString(fmt.Sprintf(" (%s)", row.Recurrence))
		}
		if row.Next != "" {
			line.WriteString(fmt.Sprintf(" next:%s", row.Next))
		}
		line.WriteString(fmt.Sprintf(" [%s]", row.Category))
		if !row.Active {
			b.WriteString(st.Dim.Render(line.String() + " paused"))
		} else {
			b.WriteString(line.String())
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	b.WriteString("keys: [tab]next field [enter]save [esc]cancel\n")
	for _, f := range data.Fields {
		marker := "  "
		if f.Focused {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, f.Label, f.View))
	}
	if data.Error != "" {
		b.WriteString("error: " + data.Error)
	}
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("keys: [t]theme [u]backup url [B]run backup [esc]back\n")
	b.WriteString(fmt.Sprintf("theme: %s\n", data.Theme))
	if data.EditingURL {
		b.WriteString(fmt.Sprintf("backup url: %s\n", data.URLInputView))
	} else if data.BackupURL != "" {
		b.WriteString(fmt.Sprintf("backup url: %s\n", data.BackupURL))
	} else {
		b.WriteString("backup url: (not configured)\n")
	}
	b.WriteString(fmt.Sprintf("secret key: %s\n", maskSecret(data.SecretKey)))
	if data.LastBackup != "" {
		b.WriteString(fmt.Sprintf("last backup: %s\n", data.LastBackup))
	} else {
		b.WriteString("last backup: never\n")
	}
	if data.BackupRunning {
		b.WriteString("backup: " + data.BackupSpinner + " running\n")
	}
	if data.DesktopEnabled {
		b.WriteString("desktop notifications: on")
	} else {
		b.WriteString("desktop notifications: off")
	}
	return strings.TrimSpace(b.String())
}

// RenderHelpPanel composes the bindings as a markdown document and runs it
// through the themed markdown renderer.
func RenderHelpPanel(data HelpPanelData, st Styles) string {
	var b strings.Builder
	b.WriteString("# help\n\n")
	for _, binding := range data.Bindings {
		b.WriteString("- " + binding + "\n")
	}
	if data.Notes != "" {
		b.WriteString("\n" + data.Notes + "\n")
	}
	return RenderMarkdown(b.String(), st)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: %s: %s", title, body)
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "[HIGH]"
	case "low":
		return "[LOW]"
	default:
		return "[MED]"
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(none)"
	}
	if len(secret) <= 8 {
		return "********"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
