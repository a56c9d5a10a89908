package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/festdays/internal/application/settings"
	"github.com/tesso57/festdays/internal/application/usecase"
	"github.com/tesso57/festdays/internal/domain/selection"
	"github.com/tesso57/festdays/internal/presentation/tui/state"
	"github.com/tesso57/festdays/internal/presentation/tui/update"
	"github.com/tesso57/festdays/internal/presentation/tui/view"
	listview "github.com/tesso57/festdays/internal/presentation/tui/view/list"
	"go.uber.org/zap"
)

// Title is the heading shown above the search box.
const Title = "🎉 Upcoming Festivals"

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	catalog  usecase.CatalogService
	share    usecase.ShareService
	logger   *zap.Logger
	state    *state.ModelState
}

// NewModel creates a new application model. The catalog is loaded by Init.
func NewModel(cfg settings.Settings, catalogSvc usecase.CatalogService, shareSvc usecase.ShareService, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		settings: cfg,
		catalog:  catalogSvc,
		share:    shareSvc,
		logger:   logger,
		state:    newModelState(cfg, time.Now()),
	}
}

// Init starts the spinner and the one-shot feed load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.LoadCatalogCmd(&m.catalog))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.MouseMsg:
		if update.HandleMouseMsg(m.state, msg) {
			return m, nil
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.CatalogLoadedMsg:
		update.HandleCatalogLoadedMsg(m.state, msg, m.deps())
	case update.ShareCompletedMsg:
		update.HandleShareCompletedMsg(m.state, msg)
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.ListView && !m.state.Loading {
		m.state.CardList, cmd = m.state.CardList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Share:  &m.share,
		Logger: m.logger,
	}
}

func newModelState(cfg settings.Settings, now time.Time) *state.ModelState {
	st := &state.ModelState{
		Session:   state.ListView,
		CardList:  newCardList(cfg),
		Search:    newSearchInput(),
		Help:      help.New(),
		Spinner:   newSpinner(cfg),
		Loading:   true,
		Keys:      state.NewKeyMap(cfg.KeyMap),
		Year:      now.Year(),
		Selection: selection.New(),
	}

	st.CardList.KeyMap.CursorUp = st.Keys.Up
	st.CardList.KeyMap.CursorDown = st.Keys.Down
	st.CardList.KeyMap.GoToStart = st.Keys.Top
	st.CardList.KeyMap.GoToEnd = st.Keys.Bottom

	return st
}

func newCardList(cfg settings.Settings) list.Model {
	delegate := listview.NewCardDelegate(lipgloss.Color(cfg.Theme.Accent), lipgloss.Color(cfg.Theme.Muted))
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Festivals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search festivals..."
	ti.Prompt = ""
	ti.CharLimit = 80
	ti.Width = 40
	return ti
}

func newSpinner(cfg settings.Settings) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Accent))
	return s
}
