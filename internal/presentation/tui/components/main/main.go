// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Body   string
}

// Render renders the main view component.
func Render(p Props) string {
	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1).
		Render(p.Body)
}
