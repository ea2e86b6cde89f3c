// Package choice is the single-choice list screen used for the use case and
// model steps.
package choice

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

// ChoiceScreen lists options and commits the one picked with Enter.
type ChoiceScreen struct {
	title  string
	prompt string
	menu   components.Menu
	alert  string
}

var _ screen.Screen = (*ChoiceScreen)(nil)
var _ screen.KeyHintProvider = (*ChoiceScreen)(nil)

// New creates a ChoiceScreen. build turns the picked option into the
// step's action; selected pre-positions the cursor.
func New(title, prompt string, options []string, selected string, build func(string) wizard.Action) *ChoiceScreen {
	items := make([]components.MenuItem, len(options))
	for i, opt := range options {
		items[i] = components.MenuItem{
			Label:  opt,
			Action: func() tea.Cmd { return screen.Commit(build(opt)) },
		}
	}
	menu := components.NewMenu(items)
	menu.Select(selected)
	return &ChoiceScreen{title: title, prompt: prompt, menu: menu}
}

func (s *ChoiceScreen) Init() tea.Cmd { return nil }

func (s *ChoiceScreen) Title() string { return s.title }

func (s *ChoiceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Current returns the option under the cursor.
func (s *ChoiceScreen) Current() string { return s.menu.Current() }

func (s *ChoiceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RejectedMsg:
		s.alert = msg.Err.Err.Error()
		return s, nil
	case tea.KeyPressMsg:
		s.alert = ""
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ChoiceScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + s.prompt))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if s.alert != "" {
		b.WriteString("\n  ")
		b.WriteString(layout.RenderAlert(s.alert))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
