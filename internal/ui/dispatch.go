package ui

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/player"
	"github.com/five82/cadence/internal/prefs"
)

// Result messages for commands started by dispatch.

type playResultMsg struct {
	track moodapi.Track
	err   error
}

type playbackMsg struct {
	playing bool
	err     error
}

type skipResultMsg struct {
	trackID string
	err     error
}

type forceRefreshMsg struct{ trackID string }

type refreshDoneMsg struct{ trackID string }

type favoriteResultMsg struct {
	trackID    string
	isFavorite bool
	err        error
}

type favoritesLoadedMsg struct {
	ids []string
	err error
}

type clipboardMsg struct {
	what string
	err  error
}

// dispatch performs act for the track identified by trackID. Keys and mouse
// clicks both end up here.
func (m *Model) dispatch(act action, trackID string) tea.Cmd {
	switch act {
	case actionOpenFavorites:
		return m.openPanel(panelFavorites)
	case actionOpenHistory:
		return m.openPanel(panelHistory)
	case actionClosePanel:
		return m.closePanel()
	case actionToggleTheme:
		return m.toggleTheme()
	case actionPanelSearch:
		if m.panel.state == panelListing {
			return m.panel.search.Focus()
		}
		return nil
	case actionSelect:
		m.selectTrack(trackID)
		return nil
	}

	track, ok := m.trackByID(trackID)
	if !ok {
		return nil
	}

	switch act {
	case actionPlay:
		return m.play(track)
	case actionSkip:
		return m.skip(track)
	case actionFavorite:
		return m.toggleFavorite(track)
	case actionRate:
		m.modal = newFeedbackModal(moodapi.FeedbackTrack, track, "", submitFeedbackCmd(m.ctx, m.api))
		return nil
	}
	return nil
}

func (m *Model) play(track moodapi.Track) tea.Cmd {
	ctx, p := m.ctx, m.player
	return func() tea.Msg {
		return playResultMsg{track: track, err: p.Play(ctx, track)}
	}
}

func (m *Model) togglePlayback() tea.Cmd {
	if _, ok := m.player.Current(); !ok {
		return nil
	}
	ctx, p := m.ctx, m.player
	return func() tea.Msg {
		playing, err := p.TogglePlayback(ctx)
		return playbackMsg{playing: playing, err: err}
	}
}

// skip marks the card as skipping and tells the server. A card already being
// skipped ignores further requests.
func (m *Model) skip(track moodapi.Track) tea.Cmd {
	if m.skipping[track.ID] {
		return nil
	}
	m.skipping[track.ID] = true
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return skipResultMsg{trackID: track.ID, err: api.Skip(ctx, track.ID)}
	}
}

// skipTarget is what alt+right skips: the current track, else the selection.
func (m *Model) skipTarget() (moodapi.Track, bool) {
	if track, ok := m.player.Current(); ok {
		return track, true
	}
	return m.selectedTrack()
}

// toggleFavorite flips the heart immediately; the server answer settles it.
func (m *Model) toggleFavorite(track moodapi.Track) tea.Cmd {
	if !m.favs.Begin(track.ID) {
		return nil
	}
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		isFav, err := api.ToggleFavorite(ctx, track.ID)
		return favoriteResultMsg{trackID: track.ID, isFavorite: isFav, err: err}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme = GetTheme(prefs.OtherTheme(m.theme.Name))
	m.help = newHelp(m.theme)
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
	return m.showToast(toastInfo, "Theme toggled")
}

func (m *Model) copyLink(what, url string) tea.Cmd {
	if url == "" {
		return m.showToast(toastInfo, "No Spotify link available")
	}
	return func() tea.Msg {
		return clipboardMsg{what: what, err: clipboard.WriteAll(url)}
	}
}

func loadFavoritesCmd(m *Model) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		data, err := api.FetchUserData(ctx)
		return favoritesLoadedMsg{ids: data.Favorites, err: err}
	}
}

// handleResult applies the outcome of a dispatched command. It reports false
// for messages it does not own.
func (m *Model) handleResult(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case playResultMsg:
		if msg.err != nil {
			m.logger.Warn("play failed", zap.String("track_id", msg.track.ID), zap.Error(msg.err))
			return m.showToast(toastError, player.FailureMessage(msg.err)), true
		}
		return nil, true

	case playbackMsg:
		if msg.err != nil && !errors.Is(msg.err, player.ErrNothingPlaying) {
			m.logger.Warn("resume failed", zap.Error(msg.err))
			return m.showToast(toastError, player.FailureMessage(msg.err)), true
		}
		return nil, true

	case skipResultMsg:
		if msg.err != nil {
			delete(m.skipping, msg.trackID)
			m.logger.Warn("skip failed", zap.String("track_id", msg.trackID), zap.Error(msg.err))
			return m.showToast(toastError, moodapi.Message(msg.err, "Failed to skip track")), true
		}
		id := msg.trackID
		return tea.Tick(skipRefreshDelay, func(time.Time) tea.Msg {
			return forceRefreshMsg{trackID: id}
		}), true

	case forceRefreshMsg:
		ctx, r, id := m.ctx, m.refresher, msg.trackID
		return func() tea.Msg {
			if r != nil {
				r.Refresh(ctx, true)
			}
			return refreshDoneMsg{trackID: id}
		}, true

	case refreshDoneMsg:
		delete(m.skipping, msg.trackID)
		return fetchSnapshotCmd(m.store), true

	case favoriteResultMsg:
		if msg.err != nil {
			m.favs.Revert(msg.trackID)
			m.logger.Warn("favorite toggle failed", zap.String("track_id", msg.trackID), zap.Error(msg.err))
			return m.showToast(toastError, moodapi.Message(msg.err, "Failed to update favorites")), true
		}
		m.favs.Resolve(msg.trackID, msg.isFavorite)
		kind, text := toastInfo, "Removed from favorites"
		if msg.isFavorite {
			kind, text = toastSuccess, "Added to favorites!"
		}
		cmds := []tea.Cmd{m.showToast(kind, text)}
		if m.panel.open() && m.panel.kind == panelFavorites {
			cmds = append(cmds, m.openPanel(panelFavorites))
		}
		return tea.Batch(cmds...), true

	case favoritesLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("initial favorites load failed", zap.Error(msg.err))
			return nil, true
		}
		m.favs.Replace(msg.ids)
		return nil, true

	case feedbackResultMsg:
		if msg.err != nil {
			m.logger.Warn("feedback failed", zap.String("type", string(msg.kind)), zap.Error(msg.err))
		}
		kind, text := feedbackToast(msg)
		return m.showToast(kind, text), true

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			return m.showToast(toastError, "Failed to copy "+msg.what), true
		}
		return m.showToast(toastInfo, "Copied "+msg.what), true

	case toastMsg:
		return m.showToast(msg.kind, msg.message), true

	case toastExpiredMsg:
		m.expireToast(msg.id)
		return nil, true
	}
	return nil, false
}
