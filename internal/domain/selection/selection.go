// Package selection implements the search box and suggestion dropdown
// state machine. Every transition is a pure function of the current state
// and its input; applying the resulting view is left to the caller.
package selection

import (
	"strings"

	"github.com/tesso57/festdays/internal/domain/festival"
)

// NoHighlight marks that no suggestion is highlighted.
const NoHighlight = -1

// Phase is the coarse state of the search box.
type Phase int

const (
	// Idle means the query is empty and the dropdown is hidden.
	Idle Phase = iota
	// Suggesting means the query is non-empty.
	Suggesting
)

// State is the search box state.
type State struct {
	Query       string
	Suggestions []string
	Highlighted int
}

// Outcome describes the view a transition wants rendered.
// When Render is false the current view stays as it is.
type Outcome struct {
	View   []festival.Event
	Render bool
}

// New returns the idle state.
func New() State {
	return State{Highlighted: NoHighlight}
}

// Phase reports whether the state is idle or suggesting.
func (s State) Phase() Phase {
	if s.Query == "" {
		return Idle
	}
	return Suggesting
}

// DropdownVisible reports whether suggestions should be shown.
func (s State) DropdownVisible() bool {
	return len(s.Suggestions) > 0
}

// HighlightedName returns the highlighted suggestion, if any.
func (s State) HighlightedName() (string, bool) {
	if s.Highlighted < 0 || s.Highlighted >= len(s.Suggestions) {
		return "", false
	}
	return s.Suggestions[s.Highlighted], true
}

// Input applies a new query. Suggestions are recomputed and the highlight
// is cleared. Clearing the query restores the full view.
func (s State) Input(c festival.Catalog, query string) (State, Outcome) {
	next := State{Query: query, Highlighted: NoHighlight}
	if query == "" {
		return next, Outcome{View: c.All(), Render: true}
	}
	next.Suggestions = c.SuggestionNames(query)
	return next, Outcome{}
}

// Next moves the highlight forward, wrapping past the last suggestion.
func (s State) Next() State {
	n := len(s.Suggestions)
	if n == 0 {
		return s
	}
	s.Highlighted = (s.Highlighted + 1) % n
	return s
}

// Prev moves the highlight backward, wrapping before the first suggestion.
func (s State) Prev() State {
	n := len(s.Suggestions)
	if n == 0 {
		return s
	}
	if s.Highlighted < 0 {
		s.Highlighted = n - 1
		return s
	}
	s.Highlighted = (s.Highlighted - 1 + n) % n
	return s
}

// Enter commits the highlighted suggestion. Without a highlight the trimmed
// query is applied as a substring filter instead.
func (s State) Enter(c festival.Catalog) (State, Outcome) {
	if s.Highlighted >= 0 {
		return s.Commit(c, s.Highlighted)
	}
	query := strings.TrimSpace(s.Query)
	next := State{Query: s.Query, Highlighted: NoHighlight}
	return next, Outcome{View: c.Filter(festival.NameContains(query)), Render: true}
}

// Commit selects the suggestion at index: the query becomes its full name
// and the view holds exactly the events carrying that name.
func (s State) Commit(c festival.Catalog, index int) (State, Outcome) {
	if index < 0 || index >= len(s.Suggestions) {
		return s, Outcome{}
	}
	name := s.Suggestions[index]
	next := State{Query: name, Highlighted: NoHighlight}
	return next, Outcome{View: c.Filter(festival.NameEquals(name)), Render: true}
}

// Dismiss hides the dropdown and keeps the query and the current view.
func (s State) Dismiss() State {
	return State{Query: s.Query, Highlighted: NoHighlight}
}

// ShowAll clears the query and restores the full catalog view.
func (s State) ShowAll(c festival.Catalog) (State, Outcome) {
	return New(), Outcome{View: c.All(), Render: true}
}
