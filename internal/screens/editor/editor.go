// Package editor is the multi-line text screen used for label descriptions,
// categories and prompt examples.
package editor

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

// Config describes one editor screen.
type Config struct {
	Title  string
	Prompt string
	Help   string
	Value  string
	Build  func(string) wizard.Action
}

// EditorScreen edits a multi-line fragment. Ctrl+S commits; Enter inserts
// a newline.
type EditorScreen struct {
	cfg    Config
	area   components.TextArea
	alert  string
	width  int
	height int
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates an EditorScreen.
func New(cfg Config) *EditorScreen {
	return &EditorScreen{
		cfg:  cfg,
		area: components.NewTextArea("", cfg.Value),
	}
}

func (s *EditorScreen) Init() tea.Cmd { return s.area.Init() }

func (s *EditorScreen) Title() string { return s.cfg.Title }

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Continue"},
		{Key: "Enter", Description: "New line"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Value returns the current text.
func (s *EditorScreen) Value() string { return s.area.Value() }

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ResizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.fit()
		return s, nil
	case screen.RejectedMsg:
		s.alert = msg.Err.Err.Error()
		s.area.SetInvalid(true)
		s.fit()
		return s, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+s" {
			return s, screen.Commit(s.cfg.Build(s.area.Value()))
		}
		if s.alert != "" {
			s.alert = ""
			s.fit()
		}
	}
	var cmd tea.Cmd
	s.area, cmd = s.area.Update(msg)
	return s, cmd
}

// fit sizes the text area to the content area left by the prompt lines
// and the alert.
func (s *EditorScreen) fit() {
	if s.width == 0 || s.height == 0 {
		return
	}
	used := 3
	if s.cfg.Help != "" {
		used++
	}
	if s.alert != "" {
		used += 2
	}
	s.area.SetSize(s.width-4, s.height-used)
}

func (s *EditorScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + s.cfg.Prompt))
	b.WriteString("\n")
	if s.cfg.Help != "" {
		b.WriteString(theme.Hint.Render("  " + s.cfg.Help))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(s.area.View()))
	if s.alert != "" {
		b.WriteString("\n\n  ")
		b.WriteString(layout.RenderAlert(s.alert))
	}
	return b.String()
}
