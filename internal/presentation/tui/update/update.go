// Package update holds UI update logic for the TUI.
package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/domain/festival"
	"github.com/tesso57/festdays/internal/domain/selection"
	"github.com/tesso57/festdays/internal/presentation/tui/intent"
	"github.com/tesso57/festdays/internal/presentation/tui/metrics"
	"github.com/tesso57/festdays/internal/presentation/tui/presenter"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
	"go.uber.org/zap"
)

// Status messages shown in the footer.
const (
	CopiedMessage     = "Copied to clipboard!"
	CopyFailedMessage = "Could not copy to clipboard."
)

// Deps groups external dependencies for updates.
type Deps struct {
	Share  *usecase.ShareService
	Logger *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return zap.NewNop()
}

// CatalogLoadedMsg is emitted after the feed load completes.
type CatalogLoadedMsg struct {
	Catalog festival.Catalog
	Report  usecase.LoadReport
	Err     error
}

// ShareCompletedMsg is emitted after a share attempt.
type ShareCompletedMsg struct {
	Name   string
	Result usecase.ShareResult
	Err    error
}

// LoadCatalogCmd creates a command that loads the catalog once.
func LoadCatalogCmd(svc *usecase.CatalogService) tea.Cmd {
	return func() tea.Msg {
		c, report, err := svc.Load(context.Background())
		return CatalogLoadedMsg{Catalog: c, Report: report, Err: err}
	}
}

// ShareCmd creates a command that shares one festival.
func ShareCmd(svc *usecase.ShareService, e festival.Event) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Share(context.Background(), e)
		return ShareCompletedMsg{Name: e.Name, Result: result, Err: err}
	}
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleCatalogLoadedMsg installs the loaded catalog and renders the full view.
func HandleCatalogLoadedMsg(s *state.ModelState, msg CatalogLoadedMsg, deps Deps) {
	s.Loading = false
	defer UpdateListSizes(s)

	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = ""
		deps.logger().Error("catalog unavailable", zap.Error(msg.Err))
		return
	}

	s.Err = nil
	s.Catalog = msg.Catalog
	s.Selection = selection.New()
	s.Search.SetValue("")
	applyView(s, s.Catalog.All())
}

// HandleShareCompletedMsg reports the share outcome in the footer.
func HandleShareCompletedMsg(s *state.ModelState, msg ShareCompletedMsg) {
	defer UpdateListSizes(s)

	switch {
	case msg.Err != nil:
		s.StatusMessage = CopyFailedMessage
	case msg.Result == usecase.Copied:
		s.StatusMessage = CopiedMessage
	default:
		s.StatusMessage = ""
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	if s.Session == state.SearchView {
		return handleSearchView(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}
	if s.Loading || s.Err != nil {
		if parsed.Type == intent.ToggleHelp {
			s.Help.ShowAll = !s.Help.ShowAll
		}
		return nil, true
	}
	return handleListViewIntent(s, parsed, deps)
}

// HandleMouseMsg commits a suggestion clicked in the dropdown.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg) bool {
	if s.Loading || s.Err != nil || !s.Selection.DropdownVisible() {
		return false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}

	start, end := presenter.SuggestionWindow(len(s.Selection.Suggestions), s.Selection.Highlighted, metrics.MaxSuggestions)
	row := msg.Y - metrics.DropdownTop
	if row < 0 || start+row >= end {
		return false
	}

	next, out := s.Selection.Commit(s.Catalog, start+row)
	applySelection(s, next, out)
	leaveSearch(s)
	return true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y", "ctrl+c":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		if s.Session == state.SearchView {
			s.Search.Focus()
		}
		return nil, true
	}
	return nil, true
}

func handleSearchView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyDown:
		s.Selection = s.Selection.Next()
		return nil, true
	case tea.KeyUp:
		s.Selection = s.Selection.Prev()
		return nil, true
	case tea.KeyEnter:
		if s.Loading || s.Err != nil {
			return nil, true
		}
		if name, ok := s.Selection.HighlightedName(); ok {
			deps.logger().Debug("suggestion committed", zap.String("festival", name))
		} else {
			deps.logger().Debug("search applied", zap.String("query", s.Selection.Query))
		}
		next, out := s.Selection.Enter(s.Catalog)
		applySelection(s, next, out)
		leaveSearch(s)
		return nil, true
	case tea.KeyEsc:
		s.Selection = s.Selection.Dismiss()
		leaveSearch(s)
		UpdateListSizes(s)
		return nil, true
	}

	before := s.Search.Value()
	var cmd tea.Cmd
	s.Search, cmd = s.Search.Update(msg)
	if value := s.Search.Value(); value != before && !s.Loading && s.Err == nil {
		next, out := s.Selection.Input(s.Catalog, value)
		applySelection(s, next, out)
	}
	return cmd, true
}

func handleListViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Search:
		s.Session = state.SearchView
		s.StatusMessage = ""
		return s.Search.Focus(), true
	case intent.ShowAll:
		next, out := s.Selection.ShowAll(s.Catalog)
		applySelection(s, next, out)
		return nil, true
	case intent.Share:
		card, ok := presenter.SelectedCard(s.CardList)
		if !ok || deps.Share == nil {
			return nil, true
		}
		return ShareCmd(deps.Share, card.Event), true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

// applySelection stores the new search state, mirrors the query into the
// input box and re-renders the cards when the transition asks for it.
func applySelection(s *state.ModelState, next selection.State, out selection.Outcome) {
	s.Selection = next
	if s.Search.Value() != next.Query {
		s.Search.SetValue(next.Query)
		s.Search.CursorEnd()
	}
	if out.Render {
		applyView(s, out.View)
	}
	UpdateListSizes(s)
}

func applyView(s *state.ModelState, view []festival.Event) {
	s.View = view
	presenter.ApplyCards(&s.CardList, view)
	s.StatusMessage = presenter.CountStatus(len(view), s.Catalog.Len())
}

func leaveSearch(s *state.ModelState) {
	s.Session = state.ListView
	s.Search.Blur()
}
