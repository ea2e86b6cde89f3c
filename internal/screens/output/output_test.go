package output

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/wizard"
)

func newScreen() *OutputScreen {
	return New(config.Output{SampleSize: 100, BatchSize: 20, OutputDir: "./generated_data", SaveReasoning: true})
}

func press(s *OutputScreen, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(k)
	}
	return cmd
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	space = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

func TestPrefilledFromFragment(t *testing.T) {
	got := newScreen().Action()
	want := wizard.EnterOutputSettings{SampleSize: "100", BatchSize: "20", OutputDir: "./generated_data", SaveReasoning: true}
	if got != want {
		t.Errorf("Action() = %+v, want %+v", got, want)
	}
}

func TestToggleReasoning(t *testing.T) {
	s := newScreen()
	press(s, tab, tab, tab, space)
	if s.Action().SaveReasoning {
		t.Error("space on the reasoning row should toggle it off")
	}
}

func TestEnterCommits(t *testing.T) {
	s := newScreen()
	cmd := press(s, enter)
	msg, ok := cmd().(screen.CommitMsg)
	if !ok {
		t.Fatalf("expected CommitMsg, got %T", cmd())
	}
	if _, ok := msg.Action.(wizard.EnterOutputSettings); !ok {
		t.Errorf("expected EnterOutputSettings, got %T", msg.Action)
	}
}

func TestRejectionFocusesField(t *testing.T) {
	s := newScreen()
	s.Update(screen.RejectedMsg{Err: &wizard.RejectedError{
		Step:  wizard.OutputSettings,
		Field: "batch_size",
		Err:   errors.New("must be positive, got 0"),
	}})

	if s.focus != fieldBatch {
		t.Errorf("focus = %d, want batch row", s.focus)
	}
	if !s.inputs[fieldBatch].Invalid() {
		t.Error("batch field should be marked invalid")
	}
	if !strings.Contains(s.View(80, 20), "must be positive") {
		t.Error("alert should be rendered")
	}
}
