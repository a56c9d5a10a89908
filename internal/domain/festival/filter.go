package festival

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Predicate selects events.
type Predicate func(Event) bool

// MatchAll selects every event.
func MatchAll() Predicate {
	return func(Event) bool { return true }
}

// NameContains selects events whose name contains query, ignoring case.
// An empty query matches everything.
func NameContains(query string) Predicate {
	needle := lower(query)
	return func(e Event) bool {
		return strings.Contains(lower(e.Name), needle)
	}
}

// NameEquals selects events whose name is exactly name.
func NameEquals(name string) Predicate {
	return func(e Event) bool { return e.Name == name }
}

// Filter keeps the events matching pred without reordering them.
// A nil predicate matches everything.
func Filter(events []Event, pred Predicate) []Event {
	if pred == nil {
		pred = MatchAll()
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func lower(s string) string {
	// Casers keep state, so one per call.
	return cases.Lower(language.Und).String(s)
}
