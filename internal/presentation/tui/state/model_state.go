package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tesso57/festdays/internal/domain/festival"
	"github.com/tesso57/festdays/internal/domain/selection"
)

// ModelState holds the presentation state for the TUI. It is owned by the
// bubbletea update loop and never touched concurrently.
type ModelState struct {
	Session       Session
	Previous      Session
	CardList      list.Model
	Search        textinput.Model
	Help          help.Model
	Spinner       spinner.Model
	Loading       bool
	Keys          KeyMap
	Width         int
	Height        int
	Year          int
	Catalog       festival.Catalog
	View          []festival.Event
	Selection     selection.State
	Err           error
	StatusMessage string
}
