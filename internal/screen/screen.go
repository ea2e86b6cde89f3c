package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/ui/layout"
	"github.com/abhisek/synthgen/internal/wizard"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// CommitMsg carries a wizard action from a screen to the root model.
type CommitMsg struct {
	Action wizard.Action
}

// Commit returns a command that emits a CommitMsg for a.
func Commit(a wizard.Action) tea.Cmd {
	return func() tea.Msg { return CommitMsg{Action: a} }
}

// RejectedMsg is delivered to the active screen when its commit was refused.
// The screen keeps its input and shows the error.
type RejectedMsg struct {
	Err *wizard.RejectedError
}

// ResizeMsg gives the active screen the size of its content area, between
// header and footer. It follows every window resize and screen swap.
type ResizeMsg struct {
	Width  int
	Height int
}
