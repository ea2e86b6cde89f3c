// Package confirm asks a single yes/no question on the terminal.
package confirm

import (
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/ui/theme"
)

// ErrInterrupted is returned when the prompt is aborted with ctrl+c or the
// input ends before an answer.
var ErrInterrupted = errors.New("interrupted")

type model struct {
	question    string
	yes         bool
	answered    bool
	interrupted bool
}

func newModel(question string, defaultYes bool) model {
	return model{question: question, yes: defaultYes}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.answered || m.interrupted {
		return m, nil
	}
	switch kmsg.String() {
	case "ctrl+c", "ctrl+d", "esc":
		m.interrupted = true
		return m, tea.Quit
	case "y", "Y":
		m.yes, m.answered = true, true
		return m, tea.Quit
	case "n", "N":
		m.yes, m.answered = false, true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		m.yes = !m.yes
	case "enter":
		m.answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() tea.View {
	yes, no := theme.ButtonInactive.Render("Yes"), theme.ButtonInactive.Render("No")
	if m.yes {
		yes = theme.ButtonActive.Render("Yes")
	} else {
		no = theme.ButtonActive.Render("No")
	}
	line := theme.Body.Bold(true).Render(m.question) + "  " + yes + " " + no
	if m.answered || m.interrupted {
		line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.question+" "+m.answer()) + "\n"
	}
	return tea.NewView(line)
}

func (m model) answer() string {
	switch {
	case m.interrupted:
		return "(interrupted)"
	case m.yes:
		return "yes"
	}
	return "no"
}

func (m model) result() (bool, error) {
	if m.interrupted || !m.answered {
		return false, ErrInterrupted
	}
	return m.yes, nil
}

// eotReader ends its input with a single EOT byte, which the terminal reader
// decodes as ctrl+d. Bubbletea stops reading silently on EOF, so without it a
// closed stdin would leave the prompt waiting forever.
type eotReader struct {
	r    io.Reader
	sent bool
}

func (e *eotReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if n > 0 || !errors.Is(err, io.EOF) {
		return n, err
	}
	if e.sent || len(b) == 0 {
		return 0, io.EOF
	}
	e.sent = true
	b[0] = 0x04
	return 1, nil
}

// Ask shows question with a Yes/No toggle. Enter accepts the highlighted
// answer; y and n answer directly. Input that ends before an answer
// returns ErrInterrupted.
func Ask(question string, defaultYes bool, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(newModel(question, defaultYes), tea.WithInput(&eotReader{r: in}), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return false, ErrInterrupted
		}
		return false, fmt.Errorf("run confirmation prompt: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return false, fmt.Errorf("unexpected final model %T", final)
	}
	return m.result()
}
