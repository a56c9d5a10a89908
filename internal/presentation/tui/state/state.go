// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/festdays/internal/application/settings"
)

// Session represents which part of the screen owns the keyboard.
type Session int

const (
	ListView Session = iota
	SearchView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Search  key.Binding
	ShowAll key.Binding
	Share   key.Binding
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ShowAll, k.Share, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.Select, k.Back},
		{k.ShowAll, k.Share},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Top: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Top)...),
			key.WithHelp(cfg.Top, "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Bottom)...),
			key.WithHelp(cfg.Bottom, "bottom"),
		),
		Search: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Search)...),
			key.WithHelp(cfg.Search, "search"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys(splitKeys(cfg.ShowAll)...),
			key.WithHelp(cfg.ShowAll, "show all"),
		),
		Share: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Share)...),
			key.WithHelp(cfg.Share, "share"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave search"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
