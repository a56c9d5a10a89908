package festival

import "sort"

// Catalog is the canonical, date-ordered set of events for a session.
// It is never modified after construction.
type Catalog struct {
	events []Event
}

// NewCatalog copies events and sorts them ascending by date.
// Events sharing a date keep their input order.
func NewCatalog(events []Event) Catalog {
	sorted := append([]Event(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return Catalog{events: sorted}
}

// Len returns the number of events.
func (c Catalog) Len() int { return len(c.events) }

// All returns a copy of every event in catalog order.
func (c Catalog) All() []Event {
	return append([]Event(nil), c.events...)
}

// Filter returns the events matching pred in catalog order.
func (c Catalog) Filter(pred Predicate) []Event {
	return Filter(c.events, pred)
}

// SuggestionNames returns the names of events whose name contains query,
// case-insensitively. Duplicate names are kept.
func (c Catalog) SuggestionNames(query string) []string {
	matches := c.Filter(NameContains(query))
	names := make([]string, len(matches))
	for i, ev := range matches {
		names[i] = ev.Name
	}
	return names
}
