package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
)

type layoutMetrics struct {
	mainWidth      int
	dropdownHeight int
	mainListHeight int
}

// UpdateListSizes fits the card list between the header, the dropdown and
// the footer.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.CardList.SetSize(layout.mainWidth, layout.mainListHeight)
	s.Search.Width = clampMin(s.Width-4, 1)
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	dropdown := DropdownHeight(s)
	available := clampMin(s.Height-footerHeight(s)-metrics.HeaderLines-dropdown, 1)
	mainWidth := clampMin(s.Width-1, 1)

	return layoutMetrics{
		mainWidth:      mainWidth,
		dropdownHeight: dropdown,
		mainListHeight: reservePaginationSpace(s.CardList, available),
	}
}

// DropdownHeight returns the number of suggestion rows on screen.
func DropdownHeight(s *state.ModelState) int {
	n := len(s.Selection.Suggestions)
	if n > metrics.MaxSuggestions {
		return metrics.MaxSuggestions
	}
	return n
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Loading, s.StatusMessage, s.Help.View(&s.Keys)))
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems())*(metrics.CardLines+metrics.CardSpacing) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
