package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/recent"
)

type panelKind int

const (
	panelFavorites panelKind = iota
	panelHistory
)

func (k panelKind) title() string {
	if k == panelHistory {
		return "History"
	}
	return "My Favorites"
}

func (k panelKind) emptyText() string {
	if k == panelHistory {
		return "⟲ No listening history yet"
	}
	return "♡ No favorite tracks yet"
}

type panelState int

const (
	panelClosed panelState = iota
	panelLoading
	panelEmpty
	panelListing
)

// panel is the side drawer listing favorites or skip history. Every show
// bumps gen; responses carrying an older gen are dropped.
type panel struct {
	state    panelState
	kind     panelKind
	gen      uint64
	tracks   []moodapi.Track
	selected int
	search   textinput.Model
	spinner  spinner.Model
}

func newPanel() panel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search tracks..."
	search.CharLimit = 64

	return panel{
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (p panel) open() bool { return p.state != panelClosed }

// visible returns the tracks that match the search query, in list order.
func (p panel) visible() []moodapi.Track {
	query := strings.TrimSpace(p.search.Value())
	if query == "" {
		return p.tracks
	}
	out := make([]moodapi.Track, 0, len(p.tracks))
	for _, t := range p.tracks {
		if containsFold(t.Name, query) || containsFold(t.Artist, query) {
			out = append(out, t)
		}
	}
	return out
}

// Messages

type userDataMsg struct {
	gen  uint64
	kind panelKind
	data moodapi.UserData
	err  error
}

type tracksInfoMsg struct {
	gen    uint64
	tracks []moodapi.Track
	err    error
}

type panelClearMsg struct{ gen uint64 }

func loadUserDataCmd(ctx context.Context, api moodapi.API, gen uint64, kind panelKind) tea.Cmd {
	return func() tea.Msg {
		data, err := api.FetchUserData(ctx)
		return userDataMsg{gen: gen, kind: kind, data: data, err: err}
	}
}

func loadTracksInfoCmd(ctx context.Context, api moodapi.API, gen uint64, ids []string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := api.FetchTracksInfo(ctx, ids)
		return tracksInfoMsg{gen: gen, tracks: tracks, err: err}
	}
}

// openPanel shows kind in the loading state and starts fetching its ids.
func (m *Model) openPanel(kind panelKind) tea.Cmd {
	m.panel.gen++
	m.panel.state = panelLoading
	m.panel.kind = kind
	m.panel.tracks = nil
	m.panel.selected = 0
	m.panel.search.Reset()
	m.panel.search.Blur()
	return tea.Batch(m.panel.spinner.Tick, loadUserDataCmd(m.ctx, m.api, m.panel.gen, kind))
}

// closePanel collapses the panel now and clears its content shortly after,
// unless it has been reopened in the meantime.
func (m *Model) closePanel() tea.Cmd {
	if !m.panel.open() {
		return nil
	}
	m.panel.gen++
	m.panel.state = panelClosed
	m.panel.search.Blur()
	gen := m.panel.gen
	return tea.Tick(panelClearDelay, func(time.Time) tea.Msg {
		return panelClearMsg{gen: gen}
	})
}

func (m *Model) handleUserData(msg userDataMsg) tea.Cmd {
	if msg.gen != m.panel.gen || m.panel.state != panelLoading {
		return nil
	}
	if msg.err != nil {
		m.logger.Warn("load user data failed", zap.Error(msg.err))
		toastCmd := m.showToast(toastError, moodapi.Message(msg.err, "Failed to load user data"))
		return tea.Batch(toastCmd, m.closePanel())
	}

	ids := msg.data.SkippedTracks
	if msg.kind == panelFavorites {
		ids = msg.data.Favorites
		m.favs.Replace(msg.data.Favorites)
	}
	if len(ids) == 0 {
		m.panel.state = panelEmpty
		return nil
	}
	return loadTracksInfoCmd(m.ctx, m.api, m.panel.gen, ids)
}

func (m *Model) handleTracksInfo(msg tracksInfoMsg) tea.Cmd {
	if msg.gen != m.panel.gen || m.panel.state != panelLoading {
		return nil
	}
	if msg.err != nil {
		m.logger.Warn("load track info failed", zap.Error(msg.err))
		toastCmd := m.showToast(toastError, moodapi.Message(msg.err, "Failed to load track information"))
		return tea.Batch(toastCmd, m.closePanel())
	}
	m.panel.tracks = msg.tracks
	m.panel.selected = 0
	if len(msg.tracks) == 0 {
		m.panel.state = panelEmpty
		return nil
	}
	m.panel.state = panelListing
	return nil
}

func (m *Model) handlePanelClear(msg panelClearMsg) {
	if msg.gen != m.panel.gen || m.panel.open() {
		return
	}
	m.panel.tracks = nil
	m.panel.selected = 0
	m.panel.search.Reset()
}

// updateSearch feeds a key to the focused search box.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.panel.search.Blur()
		return nil
	}
	before := m.panel.search.Value()
	var cmd tea.Cmd
	m.panel.search, cmd = m.panel.search.Update(msg)
	if m.panel.search.Value() != before {
		m.panel.selected = 0
	}
	return cmd
}

func (m *Model) movePanelSelection(delta int) {
	n := len(m.panel.visible())
	if n == 0 {
		m.panel.selected = 0
		return
	}
	m.panel.selected = clamp(m.panel.selected+delta, 0, n-1)
}

// Rendering

type panelLineKind int

const (
	lineText panelLineKind = iota
	lineClose
	lineSearch
	lineRecent
	lineTrack
)

// panelLine is one rendered row of the panel plus what a click on it means.
type panelLine struct {
	text    string
	kind    panelLineKind
	trackID string
}

// panelLines lays the panel out top to bottom. Rendering and mouse regions
// are both derived from it.
func (m Model) panelLines() []panelLine {
	styles := m.theme.Styles()
	content := panelWidth - 3 // border + padding

	title := styles.AccentText.Bold(true).Render(m.panel.kind.title())
	closeBtn := styles.MutedText.Render("✕")
	gap := max(1, content-lipgloss.Width(title)-lipgloss.Width(closeBtn))
	lines := []panelLine{
		{text: title + strings.Repeat(" ", gap) + closeBtn, kind: lineClose},
		{},
	}

	switch m.panel.state {
	case panelLoading:
		lines = append(lines, panelLine{text: m.panel.spinner.View() + " " + styles.MutedText.Render("Loading...")})
		return lines
	case panelEmpty:
		lines = append(lines, panelLine{text: styles.FaintText.Render(m.panel.kind.emptyText())})
		return lines
	}

	lines = append(lines, panelLine{text: m.panel.search.View(), kind: lineSearch}, panelLine{})

	if entries := m.recent.Entries(); len(entries) > 0 {
		now := m.now()
		lines = append(lines, panelLine{text: styles.MutedText.Bold(true).Render("Recently Played")})
		for _, e := range entries {
			lines = append(lines, panelLine{
				text:    renderRecentEntry(e, now, styles, content),
				kind:    lineRecent,
				trackID: e.Track.ID,
			})
		}
		lines = append(lines, panelLine{})
	}

	visible := m.panel.visible()
	if len(visible) == 0 {
		lines = append(lines, panelLine{text: styles.FaintText.Render("No matching tracks")})
		return lines
	}
	for i, t := range visible {
		lines = append(lines, panelLine{
			text:    m.renderPanelTrack(t, i == m.panel.selected, styles, content),
			kind:    lineTrack,
			trackID: t.ID,
		})
	}
	return lines
}

func renderRecentEntry(e recent.Entry, now time.Time, styles Styles, width int) string {
	when := recent.RelativeTime(now, e.PlayedAt)
	label := truncate(e.Track.Name, maxLabelRunes)
	if e.Track.Artist != "" {
		label += " - " + truncate(e.Track.Artist, 15)
	}
	label = padCells(label, width-len(when)-1)
	return styles.Text.Render(label) + " " + styles.FaintText.Render(when)
}

// Panel track rows start with a play control and a heart at fixed offsets.
const (
	panelPlayOffset = 0
	panelFavOffset  = 2
	panelTextOffset = 4
)

func (m Model) renderPanelTrack(t moodapi.Track, selected bool, styles Styles, width int) string {
	heart := styles.Heart.Render(ternary(m.favs.Has(t.ID), "♥", "♡"))
	if m.favs.Pending(t.ID) {
		heart = styles.FaintText.Render("♥")
	}
	label := truncate(t.Name, maxLabelRunes)
	if t.Artist != "" {
		label += " - " + t.Artist
	}
	label = padCells(label, width-panelTextOffset)
	if selected {
		label = styles.Selected.Render(label)
	} else {
		label = styles.Text.Render(label)
	}
	return styles.AccentText.Render("▶") + " " + heart + " " + label
}

// panelWindow returns the slice of lines that fits in height, scrolled so the
// selected track stays visible, and the index of its first line.
func (m Model) panelWindow(lines []panelLine, height int) ([]panelLine, int) {
	if height <= 0 || len(lines) <= height {
		return lines, 0
	}
	target := -1
	seen := 0
	for i, l := range lines {
		if l.kind != lineTrack {
			continue
		}
		if seen == m.panel.selected {
			target = i
			break
		}
		seen++
	}
	start := 0
	if target >= height {
		start = target - height + 1
	}
	return lines[start : start+height], start
}

func (m Model) renderPanel(height int) string {
	lines, _ := m.panelWindow(m.panelLines(), height)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return m.theme.Styles().Panel.
		Width(panelWidth - 1).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(texts, "\n"))
}

// panelRegions returns the clickable regions of the open panel. The first
// region covers the whole panel so clicks inside it never count as outside.
func (m Model) panelRegions(height int) []region {
	x0 := m.width - panelWidth
	y0 := headerRow + 1
	regions := []region{{x: x0, y: y0, w: panelWidth, h: height, inPanel: true}}

	cx := x0 + 2
	lines, _ := m.panelWindow(m.panelLines(), height)
	for i, l := range lines {
		y := y0 + i
		switch l.kind {
		case lineClose:
			regions = append(regions, region{x: x0 + panelWidth - 2, y: y, w: 2, h: 1, action: actionClosePanel, inPanel: true})
		case lineSearch:
			regions = append(regions, region{x: cx, y: y, w: panelWidth - 3, h: 1, action: actionPanelSearch, inPanel: true})
		case lineRecent:
			regions = append(regions, region{x: cx, y: y, w: panelWidth - 3, h: 1, action: actionPlay, trackID: l.trackID, inPanel: true})
		case lineTrack:
			regions = append(regions,
				region{x: cx, y: y, w: panelWidth - 3, h: 1, action: actionSelect, trackID: l.trackID, inPanel: true},
				region{x: cx + panelPlayOffset, y: y, w: 1, h: 1, action: actionPlay, trackID: l.trackID, inPanel: true},
				region{x: cx + panelFavOffset, y: y, w: 1, h: 1, action: actionFavorite, trackID: l.trackID, inPanel: true},
			)
		}
	}
	return regions
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
