// Package header provides the title and search box component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title   string
	Year    int
	Search  string
	Hint    string
	Focused bool
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title)
	if p.Year > 0 {
		title += lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf(" %d", p.Year))
	}

	prefix := lipgloss.NewStyle().Foreground(p.Muted).Render("🔍 ")
	if p.Focused {
		prefix = lipgloss.NewStyle().Foreground(p.Accent).Render("🔍 ")
	}
	line := prefix + p.Search
	if p.Hint != "" {
		line += "  " + lipgloss.NewStyle().Foreground(p.Muted).Render(p.Hint)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}
