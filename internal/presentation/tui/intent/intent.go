// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Search
	ShowAll
	Share
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.ShowAll):
		return Intent{Type: ShowAll}
	case key.Matches(msg, keys.Share):
		return Intent{Type: Share}
	default:
		return Intent{Type: None}
	}
}
