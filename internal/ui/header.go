package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerSeg is one piece of the header bar. Segments with an action are
// buttons.
type headerSeg struct {
	text   string
	action action
}

const headerGap = 2

func (m Model) headerSegments() []headerSeg {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	emotion := m.snapshot.Emotion
	mood := bg.Render("detecting...", styles.FaintText)
	if emotion != "" {
		mood = bg.Render(emotionIcon(emotion)+" "+titleWord(emotion), styles.EmotionStyle(emotion))
	}

	themeLabel := "☾ Dark"
	if m.theme.Name == "light" {
		themeLabel = "☀ Light"
	}

	segs := []headerSeg{
		{text: bg.Render("cadence", styles.Logo)},
		{text: mood},
		{text: bg.Render("[♥ Favorites]", styles.Button.Bold(m.panel.open() && m.panel.kind == panelFavorites)), action: actionOpenFavorites},
		{text: bg.Render("[↺ History]", styles.Button.Bold(m.panel.open() && m.panel.kind == panelHistory)), action: actionOpenHistory},
		{text: bg.Render("["+themeLabel+"]", styles.Button), action: actionToggleTheme},
	}

	if track, ok := m.player.Current(); ok {
		state := ternary(m.player.Playing(), "▶", "⏸")
		segs = append(segs, headerSeg{text: bg.Render(state+" "+truncate(track.Name, maxLabelRunes), styles.AccentText)})
	}
	return segs
}

func (m Model) renderHeader() string {
	bg := NewBgStyle(m.theme.Surface)
	segs := m.headerSegments()
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.text
	}
	return m.theme.Styles().Header.Width(m.width).MaxWidth(m.width).Render(bg.Join(parts, headerGap))
}

// headerRegions returns the header buttons' click targets.
func (m Model) headerRegions() []region {
	var regions []region
	x := 1 // header padding
	for _, s := range m.headerSegments() {
		w := lipgloss.Width(s.text)
		if s.action != actionNone {
			regions = append(regions, region{x: x, y: headerRow, w: w, h: 1, action: s.action})
		}
		x += w + headerGap
	}
	return regions
}

// renderStatus renders the line under the header: refresh state, errors and
// the playlist link.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	var parts []string

	switch {
	case snap.Updating:
		parts = append(parts, styles.WarningText.Render("Updating recommendations..."))
	case snap.IsOffline():
		parts = append(parts, styles.DangerText.Render("● OFFLINE"))
	case !snap.LastUpdated.IsZero():
		parts = append(parts, styles.MutedText.Render("Updated "+snap.LastUpdated.Format("15:04:05")))
	default:
		parts = append(parts, styles.MutedText.Render("Connecting to "+m.serverURL+"..."))
	}

	if snap.ErrorMessage != "" {
		parts = append(parts, styles.DangerText.Render(snap.ErrorMessage))
	}
	if snap.PlaylistURL != "" {
		parts = append(parts, styles.FaintText.Render("Playlist: ")+styles.InfoText.Render(snap.PlaylistURL))
	}
	return strings.Join(parts, styles.FaintText.Render(" · "))
}

// renderDetail shows the untruncated title and artist of the selected card.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	track, ok := m.gridTrack()
	if !ok {
		return ""
	}
	c := newCard(track, m.favs)
	line := styles.Text.Bold(true).Render(c.FullTitle)
	if c.FullArtist != "" {
		line += styles.MutedText.Render(fmt.Sprintf(" by %s", c.FullArtist))
	}
	return line
}
