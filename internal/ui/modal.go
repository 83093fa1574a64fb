package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is the interface for modal dialogs. Update returns the updated
// modal, a command, and whether the modal should close. While a modal is open
// it receives every key.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// toastMsg lets a modal or command ask the model for a toast.
type toastMsg struct {
	kind    toastKind
	message string
}

func toastCmd(kind toastKind, message string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: kind, message: message} }
}
