package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
	"github.com/tesso57/festdays/internal/presentation/tui/presenter"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
	"github.com/tesso57/festdays/internal/presentation/tui/update"
)

func press(m *Model, msg tea.KeyMsg) (*Model, tea.Cmd) {
	tm, cmd := m.Update(msg)
	return tm.(*Model), cmd
}

func typeRunes(m *Model, text string) *Model {
	for _, r := range text {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func cardNames(m *Model) []string {
	var out []string
	for _, item := range m.state.CardList.Items() {
		card := item.(*presenter.Card)
		out = append(out, card.Title())
	}
	return out
}

func TestNewModel(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{}, &stubClipboard{})

	assert.Equal(t, state.ListView, m.state.Session)
	assert.True(t, m.state.Loading)
	assert.Equal(t, -1, m.state.Selection.Highlighted)
	assert.NotZero(t, m.state.Year)
	assert.NotNil(t, m.Init())
}

func TestView_Loading(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = tm.(*Model)

	out := m.View()
	assert.Contains(t, out, "Upcoming Festivals")
	assert.Contains(t, out, presenter.LoadingMessage)
}

func TestLoad_RendersCardsInDateOrder(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	require.False(t, m.state.Loading)
	assert.Equal(t, []string{"Holi", "Diwali", "Lunar New Year"}, cardNames(m))

	out := m.View()
	assert.Contains(t, out, "Diwali")
	assert.Contains(t, out, "31 days")
	assert.Contains(t, out, "Passed")
	assert.Contains(t, out, "India · Religious")
	assert.Contains(t, out, "Global · Festival")
	assert.Contains(t, out, "Showing 3 of 3 festivals")
}

func TestLoad_Failure(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.On("Fetch", mock.Anything, "https://example.com/festivals.csv", testNow).
		Return(nil, usecase.LoadReport{}, errors.New("status 404"))
	m := newTestModel(testSettings(), fetcher, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = loadModel(tm.(*Model))

	assert.Error(t, m.state.Err)
	assert.Contains(t, m.View(), presenter.LoadFailureMessage)
	fetcher.AssertExpectations(t)
}

func TestSearchFlow_SuggestionCommit(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.Equal(t, state.SearchView, m.state.Session)

	m = typeRunes(m, "di")
	assert.Equal(t, []string{"Diwali"}, m.state.Selection.Suggestions)
	assert.Len(t, m.state.CardList.Items(), 3, "suggestions do not filter cards")
	assert.Contains(t, m.View(), "Diwali")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"Diwali"}, cardNames(m))
	assert.Equal(t, "Diwali", m.state.Search.Value())
	assert.Equal(t, state.ListView, m.state.Session)
}

func TestSearchFlow_ClickSuggestion(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = typeRunes(m, "lunar")

	tm, _ = m.Update(tea.MouseMsg{Y: metrics.DropdownTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tm.(*Model)

	assert.Equal(t, []string{"Lunar New Year"}, cardNames(m))
	assert.Empty(t, m.state.Selection.Suggestions)
}

func TestShowAllRestoresCatalog(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = typeRunes(m, "xyz")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{presenter.EmptyMessage}, cardNames(m))
	assert.Contains(t, m.View(), presenter.EmptyMessage)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Equal(t, []string{"Holi", "Diwali", "Lunar New Year"}, cardNames(m))
	assert.Empty(t, m.state.Search.Value())
}

func TestShare_CopiesToClipboard(t *testing.T) {
	clip := &stubClipboard{}
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, clip)
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)

	tm, _ = m.Update(cmd())
	m = tm.(*Model)

	assert.Equal(t, "🪔 Diwali is coming up in 31 days (Nov 1, 2025)!\nhttps://example.com/festivals.csv", clip.text)
	assert.Equal(t, update.CopiedMessage, m.state.StatusMessage)
	assert.Contains(t, m.View(), update.CopiedMessage)
}

func TestShare_ClipboardFailure(t *testing.T) {
	clip := &stubClipboard{err: errors.New("no display")}
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, clip)
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)
	tm, _ = m.Update(cmd())
	m = tm.(*Model)

	assert.Equal(t, update.CopyFailedMessage, m.state.StatusMessage)
}

func TestHelpModal(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	out := m.View()
	assert.True(t, strings.Contains(out, "show all") && strings.Contains(out, "share"))
	assert.NotContains(t, out, "Upcoming Festivals")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, m.View(), "Upcoming Festivals")
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = loadModel(tm.(*Model))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.state.CardList.Index())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 2, m.state.CardList.Index())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, m.state.CardList.Index())
}

func TestSearchHint(t *testing.T) {
	m := newTestModel(testSettings(), &stubFetcher{events: sampleEvents()}, &stubClipboard{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = loadModel(tm.(*Model))

	assert.Empty(t, searchHint(m.state))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Equal(t, "type to search", searchHint(m.state))

	m = typeRunes(m, "di")
	assert.Equal(t, "↑/↓ choose · enter apply", searchHint(m.state))
	assert.Contains(t, m.View(), "enter apply")

	m = typeRunes(m, "zz")
	assert.Equal(t, "enter to filter", searchHint(m.state))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, searchHint(m.state))
	assert.Empty(t, m.state.Selection.Suggestions)
}
