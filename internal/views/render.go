package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	StatusLine string
	Footer     string
}

// Styles carries the lipgloss styles for the active theme.
type Styles struct {
	Header lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Panel  lipgloss.Style
	Footer lipgloss.Style
	Accent lipgloss.Style
	Dim    lipgloss.Style

	glamourStyle string
}

// NewStyles builds the style set for a theme name. "system" falls back to
// dark, which terminals overwhelmingly are.
func NewStyles(theme string) Styles {
	panel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	switch theme {
	case "light":
		return Styles{
			Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			Panel:  panel,
			Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			Accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
			Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

			glamourStyle: "light",
		}
	default:
		return Styles{
			Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Panel:  panel,
			Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

			glamourStyle: "dark",
		}
	}
}

func RenderApp(data AppData, st Styles) string {
	status := st.Status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = st.Error.Render(data.StatusLine)
	}

	lines := []string{
		st.Header.Render(data.Header),
		st.Panel.Width(76).Render(data.Body),
		status,
	}
	if data.Footer != "" {
		lines = append(lines, st.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, st Styles) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := st.glamourStyle
	if style == "" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
