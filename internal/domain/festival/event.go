// Package festival defines the festival records and the catalog they live in.
package festival

import (
	"time"
)

// Display fallbacks for optional columns.
const (
	DefaultEmoji  = "🎉"
	DefaultRegion = "Global"
	DefaultType   = "Festival"
)

// DefaultDateLayout renders dates as "Nov 1, 2025".
const DefaultDateLayout = "Jan 2, 2006"

// Event is one row of the festival feed.
type Event struct {
	Name   string
	Date   time.Time
	Emoji  string
	Region string
	Type   string

	daysUntil   int
	displayDate string
}

// NewEvent builds an Event and derives its day offset and display date
// for the given evaluation instant.
func NewEvent(name string, date time.Time, emoji, region, kind string, now time.Time, layout string) Event {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return Event{
		Name:        name,
		Date:        date,
		Emoji:       emoji,
		Region:      region,
		Type:        kind,
		daysUntil:   DaysUntil(date, now),
		displayDate: date.Format(layout),
	}
}

// DaysUntil returns the number of days from now until date, rounded up.
// Past dates yield zero or negative values.
func DaysUntil(date, now time.Time) int {
	const dayMillis = 24 * 60 * 60 * 1000
	diff := date.UnixMilli() - now.UnixMilli()
	days := diff / dayMillis
	if diff%dayMillis > 0 {
		days++
	}
	return int(days)
}

// DaysUntil returns the day offset computed when the event was built.
func (e Event) DaysUntil() int { return e.daysUntil }

// DisplayDate returns the formatted date computed when the event was built.
func (e Event) DisplayDate() string { return e.displayDate }

// Passed reports whether the event date is behind the evaluation instant.
func (e Event) Passed() bool { return e.daysUntil < 0 }

// EmojiOrDefault returns the emoji or the generic marker.
func (e Event) EmojiOrDefault() string {
	if e.Emoji == "" {
		return DefaultEmoji
	}
	return e.Emoji
}

// RegionOrDefault returns the region or the generic label.
func (e Event) RegionOrDefault() string {
	if e.Region == "" {
		return DefaultRegion
	}
	return e.Region
}

// TypeOrDefault returns the type or the generic label.
func (e Event) TypeOrDefault() string {
	if e.Type == "" {
		return DefaultType
	}
	return e.Type
}
