package festival

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ev(name string, date time.Time) Event {
	return NewEvent(name, date, "", "", "", testNow, "")
}

func names(events []Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

func TestNewCatalog_SortsByDate(t *testing.T) {
	c := NewCatalog([]Event{
		ev("Lunar New Year", day(2026, 2, 17)),
		ev("Diwali", day(2025, 11, 1)),
		ev("Holi", day(2026, 3, 4)),
		ev("Samhain", day(2025, 11, 1)),
	})

	want := []string{"Diwali", "Samhain", "Lunar New Year", "Holi"}
	if diff := cmp.Diff(want, names(c.All())); diff != "" {
		t.Fatalf("catalog order mismatch (-want +got):\n%s", diff)
	}

	all := c.All()
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.Before(all[i-1].Date), "catalog not sorted at %d", i)
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	input := []Event{ev("A", day(2025, 12, 1)), ev("B", day(2025, 12, 2))}
	c := NewCatalog(input)

	input[0].Name = "mutated"
	got := c.All()
	got[1].Name = "also mutated"

	assert.Equal(t, []string{"A", "B"}, names(c.All()))
}

func TestCatalog_FilterKeepsOrder(t *testing.T) {
	c := NewCatalog([]Event{
		ev("Lunar New Year", day(2026, 2, 17)),
		ev("Diwali", day(2025, 11, 1)),
		ev("Lantern Festival", day(2026, 3, 3)),
	})

	got := c.Filter(NameContains("l"))
	want := []string{"Diwali", "Lunar New Year", "Lantern Festival"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_SuggestionNames(t *testing.T) {
	c := NewCatalog([]Event{
		ev("Carnival", day(2026, 2, 14)),
		ev("Diwali", day(2025, 11, 1)),
		ev("Carnival", day(2026, 2, 20)),
	})

	assert.Equal(t, []string{"Carnival", "Carnival"}, c.SuggestionNames("CARN"))
	assert.Empty(t, c.SuggestionNames("zzz"))
	require.Equal(t, 3, c.Len())
}
