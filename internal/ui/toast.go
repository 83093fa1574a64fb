package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

// toast is the single transient notification. A newer toast replaces the
// visible one; each carries an id so only its own expiry clears it.
type toast struct {
	id      uuid.UUID
	kind    toastKind
	message string
}

type toastExpiredMsg struct{ id uuid.UUID }

// showToast replaces the current toast and schedules its expiry.
func (m *Model) showToast(kind toastKind, message string) tea.Cmd {
	t := &toast{id: uuid.New(), kind: kind, message: message}
	m.toast = t
	id := t.id
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) expireToast(id uuid.UUID) {
	if m.toast != nil && m.toast.id == id {
		m.toast = nil
	}
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	styles := m.theme.Styles()
	style := styles.InfoText
	icon := "ℹ"
	switch m.toast.kind {
	case toastSuccess:
		style = styles.SuccessText
		icon = "✓"
	case toastError:
		style = styles.DangerText
		icon = "✗"
	}
	return styles.Footer.Render(style.Render(icon + " " + m.toast.message))
}
