// Package app is the root Bubble Tea model. It owns the wizard machine,
// applies the actions screens commit and swaps in the screen for each step.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/generate"
	"github.com/abhisek/synthgen/internal/router"
	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/screens/generation"
	"github.com/abhisek/synthgen/internal/ui/layout"
	"github.com/abhisek/synthgen/internal/wizard"
)

// Outcome is how an interactive session ended.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeCompleted
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Report is the result of an interactive session. Config is only set once
// the wizard reached generation.
type Report struct {
	Outcome Outcome
	Config  config.GenerationConfig
	Result  *generate.Result
	Err     error
}

// Options configure an interactive session.
type Options struct {
	Wizard wizard.Options
	Run    generation.Runner
	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine wizard.Machine
	run     generation.Runner
	logger  *slog.Logger
	report  Report
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := wizard.New(opts.Wizard)
	return AppModel{
		router:  router.New(screenFor(m, opts.Run)),
		machine: m,
		run:     opts.Run,
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resize()

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" && m.machine.Step() != wizard.Generation {
			return m.commit(wizard.Interrupt{})
		}

	case screen.CommitMsg:
		return m.commit(msg.Action)

	case generation.FinishedMsg:
		m.report.Result = msg.Result
		m.report.Err = msg.Err
		m.report.Outcome = OutcomeCompleted
		if msg.Err != nil {
			m.report.Outcome = OutcomeFailed
		}
		m.logger.Info("generation finished", "outcome", m.report.Outcome.String(), "error", msg.Err)
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) commit(a wizard.Action) (tea.Model, tea.Cmd) {
	from := m.machine.Step()
	next, err := m.machine.Apply(a)
	if err != nil {
		var rejected *wizard.RejectedError
		if !errors.As(err, &rejected) {
			rejected = &wizard.RejectedError{Step: from, Err: err}
		}
		m.logger.Debug("wizard transition rejected", "step", from.String(), "field", rejected.Field, "error", rejected.Err)
		return m, m.router.Update(screen.RejectedMsg{Err: rejected})
	}

	m.machine = next
	m.logger.Debug("wizard transition", "from", from.String(), "to", next.Step().String())

	switch next.Step() {
	case wizard.Cancelled:
		m.report.Outcome = OutcomeCancelled
		return m, tea.Quit
	case wizard.Generation:
		cfg, _ := next.Result()
		m.report.Config = cfg
	}
	cmd := m.router.Replace(screenFor(next, m.run))
	return m, tea.Batch(cmd, m.resize())
}

// resize tells the active screen its content area size.
func (m AppModel) resize() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	header, footer := m.chrome()
	return m.router.Update(screen.ResizeMsg{
		Width:  m.width,
		Height: layout.ContentHeight(header, footer, m.height),
	})
}

// chrome renders the header and footer for the active screen.
func (m AppModel) chrome() (header, footer string) {
	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	if hints == nil {
		hints = []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	header = layout.RenderHeader(title, m.machine.Step().Number(), wizard.StepCount, m.width)
	footer = layout.RenderFooter(hints, m.width)
	return header, footer
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer at the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header, footer := m.chrome()
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the interactive wizard and blocks until it ends.
func Run(opts Options) (Report, error) {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		return Report{}, fmt.Errorf("run interactive wizard: %w", err)
	}
	am, ok := final.(AppModel)
	if !ok {
		return Report{}, fmt.Errorf("unexpected final model %T", final)
	}
	return am.report, nil
}
