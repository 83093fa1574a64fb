package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cadence/internal/moodapi"
)

var ratingLabels = [...]string{"", "Poor", "Fair", "Good", "Very Good", "Excellent"}

// feedbackModal collects a 1-5 star rating and an optional comment for either
// the detected emotion or a track.
type feedbackModal struct {
	kind    moodapi.FeedbackKind
	track   moodapi.Track
	emotion string
	rating  int
	comment textinput.Model
	submit  func(moodapi.Feedback) tea.Cmd
}

func newFeedbackModal(kind moodapi.FeedbackKind, track moodapi.Track, emotion string, submit func(moodapi.Feedback) tea.Cmd) *feedbackModal {
	comment := textinput.New()
	comment.Placeholder = "Optional comment"
	comment.Prompt = "> "
	comment.CharLimit = 500
	comment.Width = 40
	return &feedbackModal{
		kind:    kind,
		track:   track,
		emotion: emotion,
		comment: comment,
		submit:  submit,
	}
}

func (f *feedbackModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil, false
	}

	switch {
	case keyMsg.String() == "esc":
		return f, nil, true
	case key.Matches(keyMsg, keys.Confirm):
		if f.rating == 0 {
			return f, toastCmd(toastError, "Please provide a rating"), false
		}
		fb := moodapi.Feedback{
			Type:    f.kind,
			Rating:  f.rating,
			Comment: strings.TrimSpace(f.comment.Value()),
		}
		if f.kind == moodapi.FeedbackTrack {
			fb.TrackID = f.track.ID
		}
		return f, f.submit(fb), true
	case key.Matches(keyMsg, keys.NextFld):
		if f.comment.Focused() {
			f.comment.Blur()
			return f, nil, false
		}
		return f, f.comment.Focus(), false
	}

	if f.comment.Focused() {
		var cmd tea.Cmd
		f.comment, cmd = f.comment.Update(keyMsg)
		return f, cmd, false
	}

	switch s := keyMsg.String(); {
	case len(s) == 1 && s[0] >= '1' && s[0] <= '5':
		f.rating = int(s[0] - '0')
	case key.Matches(keyMsg, keys.Left):
		f.rating = max(1, f.rating-1)
	case key.Matches(keyMsg, keys.Right):
		f.rating = min(5, f.rating+1)
	}
	return f, nil, false
}

func (f *feedbackModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder

	title := "Rate this track"
	subject := strings.TrimSpace(f.track.Name)
	if f.track.Artist != "" {
		subject += " - " + f.track.Artist
	}
	if f.kind == moodapi.FeedbackEmotion {
		title = "How accurate is the detected emotion?"
		subject = emotionIcon(f.emotion) + " " + titleWord(f.emotion)
	}

	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(truncate(subject, 50)))
	b.WriteString("\n\n")

	stars := strings.Repeat("★", f.rating) + strings.Repeat("☆", 5-f.rating)
	b.WriteString(styles.WarningText.Render(stars))
	if f.rating > 0 {
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(ratingLabels[f.rating]))
	}
	b.WriteString("\n\n")
	b.WriteString(f.comment.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("1-5/←→ rate · tab comment · enter submit · esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(60).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

type feedbackResultMsg struct {
	kind moodapi.FeedbackKind
	err  error
}

func submitFeedbackCmd(ctx context.Context, api moodapi.API) func(moodapi.Feedback) tea.Cmd {
	return func(fb moodapi.Feedback) tea.Cmd {
		return func() tea.Msg {
			return feedbackResultMsg{kind: fb.Type, err: api.SubmitFeedback(ctx, fb)}
		}
	}
}

func feedbackToast(msg feedbackResultMsg) (toastKind, string) {
	if msg.err != nil {
		return toastError, moodapi.Message(msg.err, "Failed to submit feedback")
	}
	if msg.kind == moodapi.FeedbackTrack {
		return toastSuccess, "Thank you for rating this track!"
	}
	return toastSuccess, "Thank you for your feedback!"
}

// titleWord capitalizes the first letter of a single lower-case word.
func titleWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
