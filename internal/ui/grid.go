package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/state"
)

var groupLabels = [state.GroupCount]string{"Upper", "Middle", "Lower"}

func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	rows := make([]string, 0, state.GroupCount*2)
	for g := 0; g < state.GroupCount; g++ {
		rows = append(rows, styles.MutedText.Render(groupLabels[g]))
		cards := make([]string, 0, state.GroupSize*2)
		for s := 0; s < state.GroupSize; s++ {
			if s > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			track := m.snapshot.Groups[g][s]
			opts := cardRenderOpts{
				selected: !m.panel.open() && g == m.selGroup && s == m.selSlot,
				skipping: m.skipping[track.ID],
			}
			cards = append(cards, renderCard(newCard(track, m.favs), styles, opts))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) gridRegions() []region {
	var regions []region
	for g := 0; g < state.GroupCount; g++ {
		for s := 0; s < state.GroupSize; s++ {
			x, y := cardOrigin(g, s)
			regions = append(regions, cardRegions(newCard(m.snapshot.Groups[g][s], m.favs), x, y)...)
		}
	}
	return regions
}

// moveSelection moves the grid cursor, staying inside the 3x4 grid.
func (m *Model) moveSelection(dGroup, dSlot int) {
	m.selGroup = clamp(m.selGroup+dGroup, 0, state.GroupCount-1)
	m.selSlot = clamp(m.selSlot+dSlot, 0, state.GroupSize-1)
}

// gridTrack returns the real track under the grid cursor.
func (m Model) gridTrack() (moodapi.Track, bool) {
	t := m.snapshot.Groups[m.selGroup][m.selSlot]
	if t.IsPlaceholder() {
		return moodapi.Track{}, false
	}
	return t, true
}

// selectedTrack returns the track keyboard actions apply to: the panel
// selection while the panel is open, else the grid cursor. A loading or
// empty panel selects nothing.
func (m Model) selectedTrack() (moodapi.Track, bool) {
	if !m.panel.open() {
		return m.gridTrack()
	}
	if m.panel.state != panelListing {
		return moodapi.Track{}, false
	}
	visible := m.panel.visible()
	if m.panel.selected < len(visible) {
		return visible[m.panel.selected], true
	}
	return moodapi.Track{}, false
}

// selectTrack moves the cursor to id, in the panel or the grid. Placeholder
// ids select their empty slot.
func (m *Model) selectTrack(id string) {
	if id == "" {
		return
	}
	if m.panel.state == panelListing {
		for i, t := range m.panel.visible() {
			if t.ID == id {
				m.panel.selected = i
				return
			}
		}
	}
	for g := 0; g < state.GroupCount; g++ {
		for s := 0; s < state.GroupSize; s++ {
			if m.snapshot.Groups[g][s].ID == id {
				m.selGroup, m.selSlot = g, s
				return
			}
		}
	}
}

// trackByID looks id up everywhere a track can be shown.
func (m Model) trackByID(id string) (moodapi.Track, bool) {
	if id == "" {
		return moodapi.Track{}, false
	}
	if t, ok := m.snapshot.Groups.Find(id); ok {
		return t, true
	}
	for _, t := range m.panel.tracks {
		if t.ID == id {
			return t, true
		}
	}
	for _, e := range m.recent.Entries() {
		if e.Track.ID == id {
			return e.Track, true
		}
	}
	if t, ok := m.player.Current(); ok && t.ID == id {
		return t, true
	}
	return moodapi.Track{}, false
}
