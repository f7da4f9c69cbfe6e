package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookgrid/internal/books"
	"github.com/five82/bookgrid/internal/grid"
	"github.com/five82/bookgrid/internal/prefs"
	"github.com/five82/bookgrid/internal/state"
)

// screen is the top-level UI state.
type screen int

const (
	screenLoading screen = iota
	screenError
	screenTable
)

// LoadFunc performs one dataset fetch and returns the resulting snapshot.
type LoadFunc func(ctx context.Context) state.Snapshot

// Options configures the UI.
type Options struct {
	Context   context.Context
	Load      LoadFunc
	Columns   []grid.Column
	PageSize  int
	ThemeName string
	PrefsPath string
	Logger    *slog.Logger

	// Initial table state, applied after every successful load.
	Query string
	Sort  grid.SortState
	Page  int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      LoadFunc
	columns   []grid.Column
	pageSize  int
	prefsPath string
	logger    *slog.Logger
	initial   Options

	// UI state
	screen   screen
	theme    Theme
	keys     keyMap
	width    int
	height   int
	showHelp bool

	// Components
	spinner spinner.Model
	search  textinput.Model
	pager   paginator.Model
	help    help.Model

	// Data state
	loadErr   error
	ctrl      *grid.Controller
	table     *tableView
	cursor    int
	searching bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = books.DefaultColumns()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}
	theme := GetTheme(themeName)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 256

	pg := paginator.New()
	pg.Type = paginator.Dots

	m := Model{
		ctx:       ctx,
		load:      opts.Load,
		columns:   columns,
		pageSize:  opts.PageSize,
		prefsPath: opts.PrefsPath,
		logger:    logger,
		initial:   opts,
		screen:    screenLoading,
		keys:      DefaultKeyMap(),
		spinner:   sp,
		search:    ti,
		pager:     pg,
		help:      help.New(),
	}
	m.applyTheme(theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		return m.handleLoaded(state.Snapshot(msg))

	case spinner.TickMsg:
		if m.screen != screenLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.searching {
		return m.updateSearch(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenLoading:
		return m.renderLoading()
	case screenError:
		return m.renderError()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleLoaded switches to the table or error screen after a fetch.
func (m Model) handleLoaded(snap state.Snapshot) (tea.Model, tea.Cmd) {
	if snap.Failed() {
		m.screen = screenError
		m.loadErr = snap.LastError
		return m, nil
	}

	tv := &tableView{}
	opts := []grid.Option{}
	if m.pageSize > 0 {
		opts = append(opts, grid.WithPageSize(m.pageSize))
	}
	ctrl, err := grid.NewController(tv, m.columns, books.Records(snap.Books), opts...)
	if err != nil {
		m.screen = screenError
		m.loadErr = err
		return m, nil
	}

	m.ctrl = ctrl
	m.table = tv
	m.loadErr = nil
	m.screen = screenTable
	m.cursor = 0
	m.searching = false
	m.search.Blur()
	m.search.SetValue(m.initial.Query)

	ApplyInitial(ctrl, m.initial.Query, m.initial.Sort, m.initial.Page)
	m.logger.Debug("table ready",
		slog.Int("rows", len(snap.Books)),
		slog.Int("pages", tv.view.PageCount()),
	)
	return m, nil
}

// ApplyInitial sets the starting filter, sort and page on ctrl and renders
// once. page is 0-based.
func ApplyInitial(ctrl *grid.Controller, query string, sort grid.SortState, page int) {
	if query != "" {
		ctrl.SetFilter(query)
	}
	if sort.Active() {
		ctrl.SetSort(sort)
	}
	if page > 0 {
		ctrl.SelectPage(page)
		return
	}
	ctrl.Render()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case screenError:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Retry):
			m.screen = screenLoading
			m.loadErr = nil
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		m.help.ShowAll = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.SetFilter("")
		return m, nil
	}
	return m.updateSearch(msg)
}

// updateSearch forwards msg to the search input and refilters when the
// query changed.
func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.ctrl.SetFilter(after)
	}
	return m, cmd
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.ShowAll = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", slog.String("path", m.prefsPath), slog.Any("error", err))
			}
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.columns)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Sort):
		m.ctrl.ActivateSort(m.columns[m.cursor].Key)

	case key.Matches(msg, m.keys.SortColumn):
		n := int(msg.String()[0] - '0')
		if n <= len(m.columns) {
			m.cursor = n - 1
			m.ctrl.ActivateSort(m.columns[m.cursor].Key)
		}

	case key.Matches(msg, m.keys.FirstPage):
		m.ctrl.FirstPage()

	case key.Matches(msg, m.keys.PrevPage):
		m.ctrl.PrevPage()

	case key.Matches(msg, m.keys.NextPage):
		m.ctrl.NextPage()

	case key.Matches(msg, m.keys.LastPage):
		m.ctrl.LastPage()
	}
	return m, nil
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.spinner.Style = styles.AccentText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullSeparator = styles.FaintText
}

// Messages

type loadedMsg state.Snapshot

// Commands

func (m Model) loadCmd() tea.Cmd {
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		if load == nil {
			var s state.Store
			s.Update(nil, errors.New("no data source configured"))
			return loadedMsg(s.Snapshot())
		}
		return loadedMsg(load(ctx))
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
