// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/domain/selection"
	"github.com/tesso57/festdays/internal/presentation/tui/components/dropdown"
	"github.com/tesso57/festdays/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/festdays/internal/presentation/tui/components/main"
	"github.com/tesso57/festdays/internal/presentation/tui/components/modal"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
	"github.com/tesso57/festdays/internal/presentation/tui/presenter"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
	"github.com/tesso57/festdays/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header:   m.buildHeaderProps(),
		Dropdown: m.buildDropdownProps(),
		Main:     m.buildMainProps(),
		Modal:    m.buildModalProps(),
		Footer:   m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	return header.Props{
		Title:   Title,
		Year:    m.state.Year,
		Search:  m.state.Search.View(),
		Hint:    searchHint(m.state),
		Focused: m.state.Session == state.SearchView,
		Accent:  m.accent(),
		Muted:   lipgloss.Color(m.settings.Theme.Muted),
	}
}

func (m *Model) buildDropdownProps() dropdown.Props {
	sel := m.state.Selection
	if !sel.DropdownVisible() {
		return dropdown.Props{Highlighted: -1}
	}
	start, end := presenter.SuggestionWindow(len(sel.Suggestions), sel.Highlighted, metrics.MaxSuggestions)
	highlighted := -1
	if sel.Highlighted >= 0 {
		highlighted = sel.Highlighted - start
	}
	return dropdown.Props{
		Items:       sel.Suggestions[start:end],
		Highlighted: highlighted,
		Width:       m.state.Width,
		Accent:      m.accent(),
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n   %s %s", m.state.Spinner.View(), presenter.LoadingMessage)
	case m.state.Err != nil:
		body = "\n   " + presenter.LoadFailureMessage
	default:
		body = m.state.CardList.View()
	}

	return mainview.Props{
		Width:  m.state.CardList.Width(),
		Height: m.state.CardList.Height(),
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  m.accent(),
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Loading, m.state.StatusMessage, helpText)
}

func searchHint(st *state.ModelState) string {
	if st.Session != state.SearchView {
		return ""
	}
	switch {
	case st.Selection.Phase() == selection.Idle:
		return "type to search"
	case st.Selection.DropdownVisible():
		return "↑/↓ choose · enter apply"
	default:
		return "enter to filter"
	}
}

func (m *Model) accent() lipgloss.Color {
	return lipgloss.Color(m.settings.Theme.Accent)
}
