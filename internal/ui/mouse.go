package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// regions returns every clickable region of the current view. Later regions
// sit on top of earlier ones.
func (m Model) regions() []region {
	regions := m.headerRegions()
	if m.panel.open() {
		return append(regions, m.panelRegions(m.bodyHeight())...)
	}
	return append(regions, m.gridRegions()...)
}

// hitTest returns the topmost region containing (x, y).
func (m Model) hitTest(x, y int) (region, bool) {
	regions := m.regions()
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].contains(x, y) {
			return regions[i], true
		}
	}
	return region{}, false
}

// handleMouse is the single click dispatcher. Header buttons are resolved
// before the outside-click rule so a button never closes what it opens.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil || m.showHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, m.moveKey(-1, 0)
	case tea.MouseButtonWheelDown:
		return m, m.moveKey(1, 0)
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	hit, ok := m.hitTest(msg.X, msg.Y)
	if ok {
		switch hit.action {
		case actionOpenFavorites, actionOpenHistory, actionToggleTheme:
			return m, m.dispatch(hit.action, "")
		}
	}

	if m.panel.open() && (!ok || !hit.inPanel) {
		return m, m.closePanel()
	}
	if !ok {
		return m, nil
	}
	if hit.action != actionPanelSearch && m.panel.search.Focused() {
		m.panel.search.Blur()
	}
	return m, m.dispatch(hit.action, hit.trackID)
}

// moveKey moves whichever list has focus.
func (m *Model) moveKey(dy, dx int) tea.Cmd {
	if m.panel.open() {
		m.movePanelSelection(dy)
		return nil
	}
	m.moveSelection(dy, dx)
	return nil
}
