// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"github.com/tesso57/festdays/internal/domain/festival"
)

// Fixed user-facing messages.
const (
	EmptyMessage       = "No matching festivals found."
	LoadingMessage     = "Loading festivals..."
	LoadFailureMessage = "Error loading data. Check your Google Sheet URL."
)

// Card is the view model for one festival card, or for the empty view.
type Card struct {
	Emoji       string
	Name        string
	Meta        string
	DisplayDate string
	DaysLabel   string
	Event       festival.Event
	Empty       bool
	Message     string
}

// FilterValue implements list.Item.
func (c *Card) FilterValue() string { return c.Name }

// Title returns the card title.
func (c *Card) Title() string {
	if c.Empty {
		return c.Message
	}
	return c.Name
}

// Description returns the meta line.
func (c *Card) Description() string { return c.Meta }

// Icon returns the card emoji.
func (c *Card) Icon() string { return c.Emoji }

// Date returns the formatted festival date.
func (c *Card) Date() string { return c.DisplayDate }

// Days returns the remaining-days label.
func (c *Card) Days() string { return c.DaysLabel }

// Shareable reports whether the card is bound to a festival.
func (c *Card) Shareable() bool { return !c.Empty }

// DaysLabel renders the remaining days, or "Passed" for past dates.
func DaysLabel(e festival.Event) string {
	if e.Passed() {
		return "Passed"
	}
	return fmt.Sprintf("%d days", e.DaysUntil())
}

// NewCard maps one event to its card.
func NewCard(e festival.Event) Card {
	return Card{
		Emoji:       e.EmojiOrDefault(),
		Name:        e.Name,
		Meta:        fmt.Sprintf("%s · %s", e.RegionOrDefault(), e.TypeOrDefault()),
		DisplayDate: e.DisplayDate(),
		DaysLabel:   DaysLabel(e),
		Event:       e,
	}
}

// Present maps a view to cards. An empty view yields a single empty card.
func Present(view []festival.Event) []Card {
	if len(view) == 0 {
		return []Card{{Empty: true, Message: EmptyMessage}}
	}
	cards := make([]Card, len(view))
	for i, e := range view {
		cards[i] = NewCard(e)
	}
	return cards
}

// BuildCardItems builds list items for the card list.
func BuildCardItems(view []festival.Event) []list.Item {
	cards := Present(view)
	items := make([]list.Item, len(cards))
	for i := range cards {
		items[i] = &cards[i]
	}
	return items
}

// ApplyCards replaces the card list contents with the given view.
func ApplyCards(model *list.Model, view []festival.Event) {
	model.SetItems(BuildCardItems(view))
	model.Select(0)
}

// SelectedCard returns the shareable card under the cursor.
func SelectedCard(model list.Model) (*Card, bool) {
	card, ok := model.SelectedItem().(*Card)
	if !ok || card == nil || !card.Shareable() {
		return nil, false
	}
	return card, true
}

// CountStatus describes how much of the catalog is shown.
func CountStatus(shown, total int) string {
	noun := "festivals"
	if total == 1 {
		noun = "festival"
	}
	return fmt.Sprintf("Showing %s of %s %s", humanize.Comma(int64(shown)), humanize.Comma(int64(total)), noun)
}

// SuggestionWindow returns the slice bounds of suggestions to display so
// that the highlighted one stays visible.
func SuggestionWindow(total, highlighted, limit int) (start, end int) {
	if limit <= 0 || total <= limit {
		return 0, total
	}
	if highlighted >= limit {
		start = highlighted - limit + 1
	}
	return start, start + limit
}
