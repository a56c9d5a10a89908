// Package dropdown provides the suggestion dropdown component.
package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/presentation/tui/textutil"
)

// Props defines the properties for the dropdown component. Highlighted is
// relative to Items and is negative when nothing is highlighted.
type Props struct {
	Items       []string
	Highlighted int
	Width       int
	Accent      lipgloss.Color
}

// Render renders the dropdown, one suggestion per line. It renders nothing
// when there are no suggestions.
func Render(p Props) string {
	if len(p.Items) == 0 {
		return ""
	}

	normal := lipgloss.NewStyle().PaddingLeft(3)
	active := lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(p.Accent)

	rows := make([]string, len(p.Items))
	for i, name := range p.Items {
		text := textutil.SingleLine(name)
		if p.Width > 0 {
			text = textutil.Truncate(text, p.Width-3)
		}
		if i == p.Highlighted {
			rows[i] = active.Render("▸ " + text)
			continue
		}
		rows[i] = normal.Render(text)
	}
	return strings.Join(rows, "\n")
}

// Height returns the number of lines Render produces.
func Height(p Props) int {
	return len(p.Items)
}
