package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cadence/internal/prefs"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// Card colors
	CardBorder    string
	CardSelected  string
	CardSkipping  string
	SelectionBg   string
	SelectionText string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
	Heart   string

	// Emotion accents keyed by normalized emotion label
	EmotionColors map[string]string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Heart: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Heart)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.CardBorder)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.CardSelected)).
			Padding(0, 1),

		CardSkipping: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.CardSkipping)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.CardBorder)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),

		emotionColors: t.EmotionColors,
		muted:         t.Muted,
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style
	Heart       lipgloss.Style

	Header       lipgloss.Style
	Footer       lipgloss.Style
	Logo         lipgloss.Style
	Button       lipgloss.Style
	Selected     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardSkipping lipgloss.Style
	Panel        lipgloss.Style

	emotionColors map[string]string
	muted         string
}

// EmotionStyle returns the accent style for an emotion label.
func (s Styles) EmotionStyle(emotion string) lipgloss.Style {
	color := s.emotionColors[emotion]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

var themes = map[string]Theme{
	prefs.ThemeDark:  darkTheme(),
	prefs.ThemeLight: lightTheme(),
}

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	if t, ok := themes[prefs.NormalizeTheme(name)]; ok {
		return t
	}
	return darkTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return []string{prefs.ThemeDark, prefs.ThemeLight}
}

func darkTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",

		CardBorder:    "#39506d",
		CardSelected:  "#719cd6",
		CardSkipping:  "#212e3f",
		SelectionBg:   "#2b3b51",
		SelectionText: "#cdcecf",

		Text:    "#cdcecf",
		Muted:   "#738091",
		Faint:   "#71839b",
		Accent:  "#719cd6",
		Success: "#81b29a",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
		Info:    "#63cdcf",
		Heart:   "#d67ad2",

		EmotionColors: map[string]string{
			"happy":    "#dbc074",
			"sad":      "#719cd6",
			"angry":    "#c94f6d",
			"neutral":  "#738091",
			"surprise": "#f4a261",
			"fear":     "#9d79d6",
			"disgust":  "#81b29a",
		},
	}
}

func lightTheme() Theme {
	// Dayfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f6f2ee",
		Surface:    "#e4dcd4",
		SurfaceAlt: "#dbd1dd",

		CardBorder:    "#aab0ad",
		CardSelected:  "#2848a9",
		CardSkipping:  "#e4dcd4",
		SelectionBg:   "#e7d2be",
		SelectionText: "#3d2b5a",

		Text:    "#3d2b5a",
		Muted:   "#643f61",
		Faint:   "#824d5b",
		Accent:  "#2848a9",
		Success: "#396847",
		Warning: "#ac5402",
		Danger:  "#a5222f",
		Info:    "#287980",
		Heart:   "#a440b5",

		EmotionColors: map[string]string{
			"happy":    "#ac5402",
			"sad":      "#2848a9",
			"angry":    "#a5222f",
			"neutral":  "#643f61",
			"surprise": "#955f61",
			"fear":     "#6e33ce",
			"disgust":  "#396847",
		},
	}
}
