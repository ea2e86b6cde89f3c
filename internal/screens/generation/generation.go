// Package generation runs the engine in the background and renders its
// progress until the run ends.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/generate"
	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/ui/components"
	"github.com/abhisek/synthgen/internal/ui/layout"
	"github.com/abhisek/synthgen/internal/ui/theme"
)

// Runner executes one generation job, reporting each flushed batch.
type Runner func(ctx context.Context, cfg config.GenerationConfig, progress func(generate.Progress)) (*generate.Result, error)

// FinishedMsg is emitted once when the run ends.
type FinishedMsg struct {
	Result *generate.Result
	Err    error
}

type progressMsg generate.Progress

type doneMsg FinishedMsg

// GenerationScreen starts the run on Init and consumes progress over a
// channel fed by the run's goroutine.
type GenerationScreen struct {
	cfg    config.GenerationConfig
	run    Runner
	now    func() time.Time
	events chan tea.Msg
	cancel context.CancelFunc

	started   time.Time
	last      generate.Progress
	log       []string
	done      bool
	result    *generate.Result
	err       error
	canceling bool
}

var _ screen.Screen = (*GenerationScreen)(nil)
var _ screen.KeyHintProvider = (*GenerationScreen)(nil)

// New creates a GenerationScreen for cfg.
func New(cfg config.GenerationConfig, run Runner) *GenerationScreen {
	return &GenerationScreen{
		cfg: cfg,
		run: run,
		now: time.Now,
	}
}

func (s *GenerationScreen) Title() string { return "Generation" }

func (s *GenerationScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Cancel"}}
}

func (s *GenerationScreen) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.events = make(chan tea.Msg, 16)
	s.started = s.now()

	go func() {
		progress := func(p generate.Progress) {
			select {
			case s.events <- progressMsg(p):
			case <-ctx.Done():
			}
		}
		res, err := s.run(ctx, s.cfg, progress)
		s.events <- doneMsg{Result: res, Err: err}
		close(s.events)
	}()

	return waitFor(s.events)
}

// waitFor blocks on the next event from the run goroutine.
func waitFor(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// Done reports whether the run has ended.
func (s *GenerationScreen) Done() bool { return s.done }

func (s *GenerationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		p := generate.Progress(msg)
		s.last = p
		s.log = append(s.log, fmt.Sprintf("batch %d/%d flushed, %d records", p.Batch, p.Total, p.Records))
		return s, waitFor(s.events)

	case doneMsg:
		s.done = true
		s.result = msg.Result
		s.err = msg.Err
		s.cancel()
		finished := FinishedMsg(msg)
		return s, func() tea.Msg { return finished }

	case tea.KeyPressMsg:
		if s.done {
			switch msg.String() {
			case "enter", "q", "esc", "ctrl+c":
				return s, tea.Quit
			}
			return s, nil
		}
		if msg.String() == "ctrl+c" && !s.canceling {
			s.canceling = true
			s.cancel()
		}
	}
	return s, nil
}

func (s *GenerationScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Generating " + s.cfg.UseCase.UseCase + " data with " + s.cfg.Model.ModelID))
	b.WriteString("\n\n  ")

	bar := components.ProgressBar{
		Done:  s.last.Records,
		Total: s.cfg.Output.SampleSize,
		Width: max(width-6, 20),
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	tail := s.log
	if room := max(height-12, 1); len(tail) > room {
		tail = tail[len(tail)-room:]
	}
	for _, line := range tail {
		b.WriteString(theme.Hint.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case !s.done && s.canceling:
		b.WriteString(theme.Subtitle.Render("  Cancelling after the current sample..."))
	case !s.done:
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  Running for %s", s.now().Sub(s.started).Truncate(time.Second))))
	case s.err != nil:
		b.WriteString(layout.RenderAlert(failureText(s.err)))
		if s.result != nil && s.result.Path != "" {
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d records kept in %s", s.result.Records, s.result.Path)))
		}
	default:
		b.WriteString(theme.Done.Render("  " + completionText(s.result)))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func failureText(err error) string {
	if errors.Is(err, context.Canceled) {
		return "Generation cancelled"
	}
	return "Generation failed: " + err.Error()
}

func completionText(r *generate.Result) string {
	if r == nil || r.Path == "" {
		return "Nothing to generate: sample size is 0"
	}
	return fmt.Sprintf("✓ Generated %d records in %s", r.Records, r.Path)
}
