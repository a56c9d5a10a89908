package feed

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/domain/festival"
)

// Column order of the feed. The header row is skipped, never matched by name.
const (
	colName = iota
	colDate
	colEmoji
	colRegion
	colType
)

// ParseOptions controls how rows become events.
type ParseOptions struct {
	// Location resolves dates that carry no zone. Defaults to time.Local.
	Location *time.Location
	// DateLayout formats DisplayDate.
	DateLayout string
}

// Parse turns raw CSV text into events sorted by date. Rows with an empty
// name or an unparseable date are dropped and counted.
//
// Fields are split on every comma; quoted fields containing commas are not
// supported.
func Parse(text string, now time.Time, opts ParseOptions) ([]festival.Event, usecase.LoadReport) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	lines := nonEmptyLines(text)
	if len(lines) <= 1 {
		return []festival.Event{}, usecase.LoadReport{}
	}
	rows := lines[1:]

	report := usecase.LoadReport{Rows: len(rows)}
	events := make([]festival.Event, 0, len(rows))
	for _, row := range rows {
		cols := splitRow(row)
		name := cols[colName]
		if name == "" {
			report.Dropped++
			continue
		}
		date, err := dateparse.ParseIn(cols[colDate], loc)
		if err != nil {
			report.Dropped++
			continue
		}
		events = append(events, festival.NewEvent(
			name, date, cols[colEmoji], cols[colRegion], cols[colType], now, opts.DateLayout,
		))
	}
	report.Kept = len(events)

	return festival.NewCatalog(events).All(), report
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitRow always returns five trimmed cells; missing trailing cells are empty.
func splitRow(row string) [colType + 1]string {
	var cols [colType + 1]string
	for i, cell := range strings.Split(row, ",") {
		if i > colType {
			break
		}
		cols[i] = strings.TrimSpace(cell)
	}
	return cols
}
