// Package input is the single-line input screen used for labels and the
// access token.
package input

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/ui/components"
	"github.com/abhisek/synthgen/internal/ui/layout"
	"github.com/abhisek/synthgen/internal/ui/theme"
	"github.com/abhisek/synthgen/internal/wizard"
)

// Config describes one input screen.
type Config struct {
	Title       string
	Prompt      string
	Help        string
	Placeholder string
	Value       string
	Masked      bool
	Build       func(string) wizard.Action
}

// InputScreen commits its text with Enter. A rejected value stays in the
// field, marked invalid.
type InputScreen struct {
	cfg   Config
	input components.TextInput
	alert string
}

var _ screen.Screen = (*InputScreen)(nil)
var _ screen.KeyHintProvider = (*InputScreen)(nil)

// New creates an InputScreen.
func New(cfg Config) *InputScreen {
	return &InputScreen{
		cfg:   cfg,
		input: components.NewTextInput(cfg.Placeholder, cfg.Value, cfg.Masked),
	}
}

func (s *InputScreen) Init() tea.Cmd { return s.input.Init() }

func (s *InputScreen) Title() string { return s.cfg.Title }

func (s *InputScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Value returns the current text.
func (s *InputScreen) Value() string { return s.input.Value() }

func (s *InputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RejectedMsg:
		s.alert = msg.Err.Err.Error()
		s.input.SetInvalid(true)
		return s, nil
	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, screen.Commit(s.cfg.Build(s.input.Value()))
		}
		s.alert = ""
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InputScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + s.cfg.Prompt))
	b.WriteString("\n")
	if s.cfg.Help != "" {
		b.WriteString(theme.Hint.Render("  " + s.cfg.Help))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n")
	if s.alert != "" {
		b.WriteString("\n  ")
		b.WriteString(layout.RenderAlert(s.alert))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
