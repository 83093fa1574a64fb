package ui

import "time"

const (
	uiTick           = 250 * time.Millisecond
	toastLifetime    = 3 * time.Second
	panelClearDelay  = 300 * time.Millisecond
	skipRefreshDelay = 300 * time.Millisecond
)

// Grid geometry, in terminal cells. Cards are fixed size so mouse regions can
// be derived without re-measuring rendered output.
const (
	headerRow   = 0
	statusRow   = 1
	gridTop     = 3
	cardWidth   = 30 // including border
	cardHeight  = 5  // including border
	cardGap     = 1
	groupHeight = 1 + cardHeight // label line + cards
	panelWidth  = 46
)

// action identifies what a clickable region or key press does.
type action int

const (
	actionNone action = iota
	actionOpenFavorites
	actionOpenHistory
	actionToggleTheme
	actionClosePanel
	actionPlay
	actionSkip
	actionFavorite
	actionRate
	actionSelect
	actionPanelSearch
)

// region is a clickable rectangle registered while laying out the view.
type region struct {
	x, y, w, h int
	action     action
	trackID    string
	inPanel    bool
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// cardOrigin returns the top-left cell of the card at group g, slot s.
func cardOrigin(g, s int) (int, int) {
	return s * (cardWidth + cardGap), gridTop + g*groupHeight + 1
}

// gridWidth returns the width of a full row of cards.
func gridWidth() int {
	return 4*cardWidth + 3*cardGap
}
