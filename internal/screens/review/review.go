// Package review is the summary screen shown before generation starts.
package review

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/ui/components"
	"github.com/abhisek/synthgen/internal/ui/layout"
	"github.com/abhisek/synthgen/internal/ui/theme"
	"github.com/abhisek/synthgen/internal/wizard"
)

// ReviewScreen renders every config field with the token redacted and
// offers Generate or Back.
type ReviewScreen struct {
	lines   []config.SummaryLine
	buttons components.ButtonRow
	alert   string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates the summary screen for cfg.
func New(cfg config.GenerationConfig) *ReviewScreen {
	return &ReviewScreen{
		lines: config.Summary(cfg),
		buttons: components.NewButtonRow(
			components.NewButton("Generate", true, func() tea.Cmd { return screen.Commit(wizard.Generate{}) }),
			components.NewButton("Back", false, func() tea.Cmd { return screen.Commit(wizard.Back{}) }),
		),
	}
}

func (s *ReviewScreen) Init() tea.Cmd { return nil }

func (s *ReviewScreen) Title() string { return "Summary" }

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RejectedMsg:
		s.alert = msg.Err.Err.Error()
		return s, nil
	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			return s, screen.Commit(wizard.Back{})
		}
	}
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Review your configuration"))
	b.WriteString("\n\n")

	valueWidth := max(width-26, 20)
	for _, l := range s.lines {
		key := theme.Label.Render("  " + l.Key + ":")
		if l.Block {
			b.WriteString(key)
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				MarginLeft(4).
				Width(valueWidth).
				Render(orNone(l.Value)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(key + " " + theme.Body.Render(orNone(l.Value)))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(s.buttons.View())
	b.WriteString("\n")
	if s.alert != "" {
		b.WriteString("\n  ")
		b.WriteString(layout.RenderAlert(s.alert))
	}
	return b.String()
}

func orNone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(none)"
	}
	return v
}
