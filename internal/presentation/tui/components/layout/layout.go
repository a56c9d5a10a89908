// Package layout provides the screen layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header   string
	Dropdown string
	Main     string
	Footer   string
}

// Render stacks the sections top to bottom. The dropdown sits directly under
// the header and is omitted when empty.
func Render(p Props) string {
	parts := []string{p.Header}
	if p.Dropdown != "" {
		parts = append(parts, p.Dropdown)
	}
	parts = append(parts, p.Main, p.Footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
