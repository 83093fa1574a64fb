package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Escape      key.Binding

	// Panels
	Favorites key.Binding
	History   key.Binding
	Search    key.Binding

	// Playback
	TogglePlay key.Binding
	SkipNow    key.Binding

	// Track actions
	Play     key.Binding
	Skip     key.Binding
	Favorite key.Binding
	Rate     key.Binding
	CopyLink key.Binding
	CopyList key.Binding

	// Emotion
	RateEmotion key.Binding

	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Modal
	Confirm key.Binding
	NextFld key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close panel"),
		),

		Favorites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Favorites"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "History"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search panel"),
		),

		TogglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause"),
		),
		SkipNow: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "Skip current"),
		),

		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Play"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Skip"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "Favorite"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Rate track"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy track link"),
		),
		CopyList: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "Copy playlist link"),
		),

		RateEmotion: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Rate emotion"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Right"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
		NextFld: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Comment"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Skip, k.Favorite, k.Favorites, k.History, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Play, k.Skip, k.Favorite, k.Rate, k.CopyLink, k.CopyList},
		{k.TogglePlay, k.SkipNow, k.RateEmotion},
		{k.Favorites, k.History, k.Search, k.Escape},
		{k.ToggleTheme, k.Help, k.Quit},
	}
}
