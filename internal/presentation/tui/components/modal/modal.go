// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Quit asks for quit confirmation.
	Quit
	// Help shows the full key help.
	Help
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the modal component centered on screen.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)
	if p.Kind == Quit {
		style = style.Width(40).BorderForeground(p.Accent)
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(p.Body))
}
