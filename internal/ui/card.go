package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/cadence/internal/favorites"
	"github.com/five82/cadence/internal/moodapi"
)

// emotionIcons maps a normalized emotion label to its glyph.
var emotionIcons = map[string]string{
	"happy":    "😊",
	"sad":      "😢",
	"angry":    "😠",
	"neutral":  "😐",
	"surprise": "😮",
	"fear":     "😨",
	"disgust":  "🤢",
}

// emotionIcon returns the glyph for emotion, falling back to neutral.
func emotionIcon(emotion string) string {
	if icon, ok := emotionIcons[moodapi.NormalizeEmotion(emotion)]; ok {
		return icon
	}
	return emotionIcons["neutral"]
}

const placeholderText = "No track available"

// card is the display model of one grid slot. It is derived purely from a
// track and the favorites set.
type card struct {
	ID          string
	Title       string
	Artist      string
	FullTitle   string
	FullArtist  string
	SpotifyURL  string
	Favorite    bool
	FavPending  bool
	Placeholder bool
}

func newCard(track moodapi.Track, favs *favorites.Store) card {
	if track.IsPlaceholder() {
		return card{ID: track.ID, Title: placeholderText, Placeholder: true}
	}
	c := card{
		ID:         track.ID,
		Title:      truncate(track.Name, maxLabelRunes),
		Artist:     truncate(track.Artist, maxLabelRunes),
		FullTitle:  strings.TrimSpace(track.Name),
		FullArtist: strings.TrimSpace(track.Artist),
		SpotifyURL: track.SpotifyURL,
	}
	if favs != nil {
		c.Favorite = favs.Has(track.ID)
		c.FavPending = favs.Pending(track.ID)
	}
	return c
}

// cardControl is one clickable control on a card's bottom line.
type cardControl struct {
	action action
	label  string
}

func cardControls(c card) []cardControl {
	return []cardControl{
		{actionFavorite, ternary(c.Favorite, "♥", "♡")},
		{actionPlay, "▶ play"},
		{actionSkip, "» skip"},
		{actionRate, "★ rate"},
	}
}

const controlGap = 2

// controlOffsets returns the x offset of each control relative to the card's
// content area.
func controlOffsets(controls []cardControl) []int {
	offsets := make([]int, len(controls))
	x := 0
	for i, ctl := range controls {
		offsets[i] = x
		x += runewidth.StringWidth(ctl.label) + controlGap
	}
	return offsets
}

// cardRenderOpts carries the per-card view state that is not part of card.
type cardRenderOpts struct {
	selected bool
	skipping bool
}

func renderCard(c card, styles Styles, opts cardRenderOpts) string {
	inner := cardWidth - 2 // border
	content := inner - 2   // padding

	style := styles.Card
	switch {
	case opts.skipping:
		style = styles.CardSkipping
	case opts.selected:
		style = styles.CardSelected
	}
	style = style.Width(inner).Height(cardHeight - 2)

	if c.Placeholder {
		lines := []string{
			styles.FaintText.Render(padCells(c.Title, content)),
			"",
			"",
		}
		return style.Render(strings.Join(lines, "\n"))
	}

	title := styles.Text.Bold(true).Render(padCells(c.Title, content))
	artist := styles.MutedText.Render(padCells(c.Artist, content))

	controls := cardControls(c)
	parts := make([]string, len(controls))
	for i, ctl := range controls {
		st := styles.AccentText
		switch {
		case ctl.action == actionFavorite && c.FavPending:
			st = styles.FaintText
		case ctl.action == actionFavorite:
			st = styles.Heart
		case opts.skipping:
			st = styles.FaintText
		}
		parts[i] = st.Render(ctl.label)
	}
	controlLine := strings.Join(parts, strings.Repeat(" ", controlGap))

	body := lipgloss.JoinVertical(lipgloss.Left, title, artist, controlLine)
	return style.Render(body)
}

// cardRegions returns the clickable regions of a card placed at (x, y).
func cardRegions(c card, x, y int) []region {
	regions := []region{{x: x, y: y, w: cardWidth, h: cardHeight, action: actionSelect, trackID: c.ID}}
	if c.Placeholder {
		return regions
	}
	controls := cardControls(c)
	offsets := controlOffsets(controls)
	cx, cy := x+2, y+3 // border + padding, third content line
	for i, ctl := range controls {
		regions = append(regions, region{
			x:       cx + offsets[i],
			y:       cy,
			w:       runewidth.StringWidth(ctl.label),
			h:       1,
			action:  ctl.action,
			trackID: c.ID,
		})
	}
	return regions
}
