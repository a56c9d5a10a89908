package tui

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/festdays/internal/application/settings"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/domain/festival"
	"github.com/tesso57/festdays/internal/presentation/tui/update"
)

var testNow = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

type stubFetcher struct {
	mock.Mock
	events []festival.Event
	err    error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string, now time.Time) ([]festival.Event, usecase.LoadReport, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url, now)
		events, _ := args.Get(0).([]festival.Event)
		report, _ := args.Get(1).(usecase.LoadReport)
		return events, report, args.Error(2)
	}
	report := usecase.LoadReport{Rows: len(s.events), Kept: len(s.events)}
	return s.events, report, s.err
}

type stubClipboard struct {
	mock.Mock
	text string
	err  error
}

func (s *stubClipboard) WriteAll(text string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(text)
		return args.Error(0)
	}
	s.text = text
	return s.err
}

func sampleEvents() []festival.Event {
	mk := func(name string, date time.Time, emoji, region, kind string) festival.Event {
		return festival.NewEvent(name, date, emoji, region, kind, testNow, "")
	}
	return []festival.Event{
		mk("Lunar New Year", time.Date(2026, time.February, 17, 0, 0, 0, 0, time.UTC), "🧧", "East Asia", "Cultural"),
		mk("Diwali", time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), "🪔", "India", "Religious"),
		mk("Holi", time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), "", "", ""),
	}
}

func testSettings() settings.Settings {
	return settings.Settings{
		FeedURL:    "https://example.com/festivals.csv",
		DateLayout: festival.DefaultDateLayout,
		KeyMap: settings.KeyMapConfig{
			Up: "up,k", Down: "down,j", Top: "g", Bottom: "G",
			Search: "/", ShowAll: "a", Share: "s", Quit: "q",
		},
		Theme: settings.ThemeConfig{Accent: "205", Muted: "244"},
	}
}

func newTestModel(cfg settings.Settings, fetcher usecase.CatalogFetcher, clip usecase.Clipboard) *Model {
	catalogSvc := usecase.NewCatalogService(fetcher, cfg.FeedURL, time.Second, nil, func() time.Time { return testNow })
	shareSvc := usecase.NewShareService(nil, clip, cfg.ShareURL(), nil)
	return NewModel(cfg, catalogSvc, shareSvc, nil)
}

// loadModel runs the initial feed load synchronously.
func loadModel(m *Model) *Model {
	msg := update.LoadCatalogCmd(&m.catalog)()
	tm, _ := m.Update(msg)
	return tm.(*Model)
}
