package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cadence/internal/favorites"
	"github.com/five82/cadence/internal/moodapi"
	"github.com/five82/cadence/internal/state"
)

func TestNewCard_TruncatesAndKeepsFullValues(t *testing.T) {
	favs := favorites.New()
	favs.Replace([]string{"t1"})

	track := moodapi.Track{
		ID:         "t1",
		Name:       "A Very Long Song Title That Keeps Going",
		Artist:     "Someone",
		SpotifyURL: "https://open.spotify.com/track/t1",
	}
	c := newCard(track, favs)

	if c.Title != "A Very Long Song Title..." {
		t.Fatalf("Title = %q", c.Title)
	}
	if len([]rune(c.Title)) != maxLabelRunes {
		t.Fatalf("Title has %d runes, want %d", len([]rune(c.Title)), maxLabelRunes)
	}
	if c.FullTitle != track.Name || c.FullArtist != "Someone" {
		t.Fatalf("full values = %q / %q", c.FullTitle, c.FullArtist)
	}
	if !c.Favorite || c.FavPending || c.Placeholder {
		t.Fatalf("flags = %#v", c)
	}
}

func TestNewCard_Placeholder(t *testing.T) {
	c := newCard(state.Placeholder(1, 2), favorites.New())
	if !c.Placeholder || c.Title != placeholderText {
		t.Fatalf("card = %#v", c)
	}
	if c.ID != "empty-middle-2" {
		t.Fatalf("ID = %q", c.ID)
	}
}

func TestRenderCard_FixedSize(t *testing.T) {
	styles := GetTheme("dark").Styles()
	cards := []card{
		newCard(moodapi.Track{ID: "a", Name: "Song", Artist: "Band"}, favorites.New()),
		newCard(state.Placeholder(0, 0), favorites.New()),
	}
	for _, c := range cards {
		for _, opts := range []cardRenderOpts{{}, {selected: true}, {skipping: true}} {
			out := renderCard(c, styles, opts)
			if w := lipgloss.Width(out); w != cardWidth {
				t.Fatalf("card %q width = %d, want %d", c.ID, w, cardWidth)
			}
			if h := lipgloss.Height(out); h != cardHeight {
				t.Fatalf("card %q height = %d, want %d", c.ID, h, cardHeight)
			}
		}
	}
}

func TestRenderCard_PlaceholderHasNoControls(t *testing.T) {
	styles := GetTheme("dark").Styles()
	out := renderCard(newCard(state.Placeholder(0, 0), nil), styles, cardRenderOpts{})
	if !strings.Contains(out, placeholderText) {
		t.Fatalf("placeholder card missing text: %q", out)
	}
	if strings.Contains(out, "play") {
		t.Fatalf("placeholder card has controls: %q", out)
	}
	if regions := cardRegions(newCard(state.Placeholder(0, 0), nil), 0, 0); len(regions) != 1 {
		t.Fatalf("placeholder regions = %d, want only the select region", len(regions))
	}
}

func TestCardRegions_ControlsOnBottomLine(t *testing.T) {
	c := newCard(moodapi.Track{ID: "x", Name: "Song"}, favorites.New())
	x, y := cardOrigin(1, 2)
	regions := cardRegions(c, x, y)

	want := []action{actionSelect, actionFavorite, actionPlay, actionSkip, actionRate}
	if len(regions) != len(want) {
		t.Fatalf("got %d regions, want %d", len(regions), len(want))
	}
	prevX := -1
	for i, r := range regions {
		if r.action != want[i] || r.trackID != "x" {
			t.Fatalf("region %d = %#v", i, r)
		}
		if i == 0 {
			continue
		}
		if r.y != y+3 {
			t.Fatalf("control %d on row %d, want %d", i, r.y, y+3)
		}
		if r.x <= prevX || r.x+r.w > x+cardWidth-1 {
			t.Fatalf("control %d at x=%d w=%d outside card starting at %d", i, r.x, r.w, x)
		}
		prevX = r.x
	}
}

func TestEmotionIcon_FallsBackToNeutral(t *testing.T) {
	if emotionIcon("HAPPY") != emotionIcons["happy"] {
		t.Fatalf("emotionIcon should normalize case")
	}
	if emotionIcon("bored") != emotionIcons["neutral"] {
		t.Fatalf("unknown emotion should use neutral icon")
	}
}
