package choice

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/wizard"
)

func newModelScreen() *ChoiceScreen {
	return New("Model Selection", "Pick a model", []string{"m1", "m2", "m3"}, "m2",
		func(id string) wizard.Action { return wizard.SelectModel{ID: id} })
}

func TestPreselected(t *testing.T) {
	s := newModelScreen()
	if s.Current() != "m2" {
		t.Errorf("Current() = %q, want m2", s.Current())
	}
}

func TestEnterCommitsCurrent(t *testing.T) {
	s := newModelScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.CommitMsg)
	if !ok {
		t.Fatalf("expected CommitMsg, got %T", cmd())
	}
	if got := msg.Action.(wizard.SelectModel).ID; got != "m3" {
		t.Errorf("committed %q, want m3", got)
	}
}

func TestRejectedShowsAlert(t *testing.T) {
	s := newModelScreen()
	s.Update(screen.RejectedMsg{Err: &wizard.RejectedError{Step: wizard.ModelSelection, Err: errors.New("nope")}})
	if !strings.Contains(s.View(80, 20), "nope") {
		t.Error("alert should be rendered")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if strings.Contains(s.View(80, 20), "nope") {
		t.Error("alert should clear on the next key")
	}
}
