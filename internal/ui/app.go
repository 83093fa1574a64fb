package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/cadence/internal/favorites"
	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/player"
	"github.com/five82/cadence/internal/prefs"
	"github.com/five82/cadence/internal/recent"
	"github.com/five82/cadence/internal/state"
)

// Refresher forces a recommendation refresh.
type Refresher interface {
	Refresh(ctx context.Context, force bool)
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       moodapi.API
	Store     *state.Store
	Favorites *favorites.Store
	Recent    *recent.Ring
	Player    *player.Player
	Refresher Refresher
	Logger    *zap.Logger
	ServerURL string
	ThemeName string
	PrefsPath string
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	ctx       context.Context
	api       moodapi.API
	store     *state.Store
	favs      *favorites.Store
	recent    *recent.Ring
	player    *player.Player
	refresher Refresher
	logger    *zap.Logger
	serverURL string
	prefsPath string
	tick      time.Duration
	now       func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	toast    *toast

	// Data state
	snapshot state.Snapshot
	selGroup int
	selSlot  int
	skipping map[string]bool
	panel    panel
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = uiTick
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	favs := opts.Favorites
	if favs == nil {
		favs = favorites.New()
	}
	ring := opts.Recent
	if ring == nil {
		ring = &recent.Ring{}
	}
	p := opts.Player
	if p == nil {
		p = player.New(opts.API)
		p.OnPlay(player.RecordTo(ring))
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	theme := GetTheme(opts.ThemeName)
	return Model{
		ctx:       ctx,
		api:       opts.API,
		store:     store,
		favs:      favs,
		recent:    ring,
		player:    p,
		refresher: opts.Refresher,
		logger:    logger,
		serverURL: opts.ServerURL,
		prefsPath: prefsPath,
		tick:      tick,
		now:       time.Now,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		snapshot:  state.Snapshot{Groups: state.Partition(nil)},
		skipping:  make(map[string]bool),
		panel:     newPanel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick), fetchSnapshotCmd(m.store)}
	if m.api != nil {
		cmds = append(cmds, loadFavoritesCmd(&m))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.tick))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		if m.panel.state != panelLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.panel.spinner, cmd = m.panel.spinner.Update(msg)
		return m, cmd

	case userDataMsg:
		return m, m.handleUserData(msg)

	case tracksInfoMsg:
		return m, m.handleTracksInfo(msg)

	case panelClearMsg:
		m.handlePanelClear(msg)
		return m, nil
	}

	if cmd, ok := m.handleResult(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	for id := range m.skipping {
		if _, ok := snap.Groups.Find(id); !ok {
			delete(m.skipping, id)
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// bodyHeight is the number of rows between the header and the toast line.
func (m Model) bodyHeight() int {
	return max(1, m.height-3)
}

func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := strings.Join([]string{
		m.renderStatus(),
		"",
		m.renderGrid(),
		"",
		m.renderDetail(),
	}, "\n")

	height := m.bodyHeight()
	if m.panel.open() {
		left := lipgloss.NewStyle().
			Width(max(0, m.width-panelWidth)).
			MaxWidth(max(0, m.width-panelWidth)).
			Height(height).
			MaxHeight(height).
			Render(body)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderPanel(height)))
	} else {
		b.WriteString(lipgloss.NewStyle().Height(height).MaxHeight(height).MaxWidth(m.width).Render(body))
	}
	b.WriteString("\n")
	b.WriteString(m.renderToast())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = modal
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// A focused text input swallows everything, including global keys.
	if m.panel.search.Focused() {
		return m, m.updateSearch(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.ToggleTheme):
		return m, m.toggleTheme()

	case key.Matches(msg, k.Escape):
		return m, m.closePanel()

	case key.Matches(msg, k.Favorites):
		return m, m.openPanel(panelFavorites)

	case key.Matches(msg, k.History):
		return m, m.openPanel(panelHistory)

	case key.Matches(msg, k.Search):
		return m, m.dispatch(actionPanelSearch, "")

	case key.Matches(msg, k.TogglePlay):
		return m, m.togglePlayback()

	case key.Matches(msg, k.SkipNow):
		if track, ok := m.skipTarget(); ok {
			return m, m.skip(track)
		}
		return m, nil

	case key.Matches(msg, k.RateEmotion):
		m.modal = newFeedbackModal(moodapi.FeedbackEmotion, moodapi.Track{}, m.snapshot.Emotion, submitFeedbackCmd(m.ctx, m.api))
		return m, nil

	case key.Matches(msg, k.CopyList):
		return m, m.copyLink("playlist link", m.snapshot.PlaylistURL)

	case key.Matches(msg, k.Up):
		return m, m.moveKey(-1, 0)
	case key.Matches(msg, k.Down):
		return m, m.moveKey(1, 0)
	case key.Matches(msg, k.Left):
		return m, m.moveKey(0, -1)
	case key.Matches(msg, k.Right):
		return m, m.moveKey(0, 1)
	}

	track, ok := m.selectedTrack()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, k.Play):
		return m, m.dispatch(actionPlay, track.ID)
	case key.Matches(msg, k.Skip):
		return m, m.dispatch(actionSkip, track.ID)
	case key.Matches(msg, k.Favorite):
		return m, m.dispatch(actionFavorite, track.ID)
	case key.Matches(msg, k.Rate):
		return m, m.dispatch(actionRate, track.ID)
	case key.Matches(msg, k.CopyLink):
		return m, m.copyLink("track link", track.SpotifyURL)
	}
	return m, nil
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
