// Package output is the output settings form: sample size, batch size,
// output directory and the save-reasoning toggle.
package output

import (
	"strconv"
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

const (
	fieldSample = iota
	fieldBatch
	fieldDir
	fieldReasoning
	fieldCount
)

var fieldLabels = [fieldCount]string{"Sample size", "Batch size", "Output directory", "Save reasoning"}

// fieldByName maps the field named in a rejection to its form row.
var fieldByName = map[string]int{
	"sample_size":      fieldSample,
	"batch_size":       fieldBatch,
	"output_directory": fieldDir,
}

// OutputScreen is a four-row form. Tab moves between rows, Space toggles
// reasoning and Enter commits all four values.
type OutputScreen struct {
	inputs    [fieldDir + 1]components.TextInput
	reasoning bool
	focus     int
	alert     string
}

var _ screen.Screen = (*OutputScreen)(nil)
var _ screen.KeyHintProvider = (*OutputScreen)(nil)

// New creates the form pre-filled from the current output fragment.
func New(o config.Output) *OutputScreen {
	s := &OutputScreen{reasoning: o.SaveReasoning}
	s.inputs[fieldSample] = components.NewTextInput("100", strconv.Itoa(o.SampleSize), false)
	s.inputs[fieldBatch] = components.NewTextInput("20", strconv.Itoa(o.BatchSize), false)
	s.inputs[fieldDir] = components.NewTextInput(config.DefaultOutputDir, o.OutputDir, false)
	s.setFocus(fieldSample)
	return s
}

func (s *OutputScreen) Init() tea.Cmd { return s.inputs[fieldSample].Init() }

func (s *OutputScreen) Title() string { return "Output Settings" }

func (s *OutputScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Action returns the action the form would commit now.
func (s *OutputScreen) Action() wizard.EnterOutputSettings {
	return wizard.EnterOutputSettings{
		SampleSize:    s.inputs[fieldSample].Value(),
		BatchSize:     s.inputs[fieldBatch].Value(),
		OutputDir:     s.inputs[fieldDir].Value(),
		SaveReasoning: s.reasoning,
	}
}

func (s *OutputScreen) setFocus(i int) tea.Cmd {
	s.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range s.inputs {
		if j == s.focus {
			cmd = s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
	return cmd
}

func (s *OutputScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.RejectedMsg:
		s.alert = msg.Err.Err.Error()
		if i, ok := fieldByName[msg.Err.Field]; ok {
			s.inputs[i].SetInvalid(true)
			return s, s.setFocus(i)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			return s, screen.Commit(s.Action())
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "space", " ":
			if s.focus == fieldReasoning {
				s.reasoning = !s.reasoning
				return s, nil
			}
		}
		s.alert = ""
	}

	if s.focus == fieldReasoning {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *OutputScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Where and how much to generate"))
	b.WriteString("\n\n")

	for i := range fieldCount {
		label := theme.Unselected
		marker := "    "
		if i == s.focus {
			label = theme.Selected
			marker = "  ▸ "
		}
		b.WriteString(label.Render(marker + padRight(fieldLabels[i], 18)))
		if i == fieldReasoning {
			box := "[ ]"
			if s.reasoning {
				box = "[x]"
			}
			b.WriteString(theme.Body.Render(box))
		} else {
			b.WriteString(s.inputs[i].View())
		}
		b.WriteString("\n")
	}

	if s.alert != "" {
		b.WriteString("\n  ")
		b.WriteString(layout.RenderAlert(s.alert))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
