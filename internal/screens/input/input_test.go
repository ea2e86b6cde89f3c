package input

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/config"
	"github.com/abhisek/synthgen/internal/screen"
	"github.com/abhisek/synthgen/internal/wizard"
)

func newLabelsScreen(value string) *InputScreen {
	return New(Config{
		Title:  "Labels",
		Prompt: "Enter labels",
		Value:  value,
		Build:  func(raw string) wizard.Action { return wizard.EnterLabels{Raw: raw} },
	})
}

func typeText(s *InputScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterCommitsTypedText(t *testing.T) {
	s := newLabelsScreen("")
	typeText(s, "pos,neg")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msg, ok := cmd().(screen.CommitMsg)
	if !ok {
		t.Fatalf("expected CommitMsg, got %T", cmd())
	}
	if got := msg.Action.(wizard.EnterLabels).Raw; got != "pos,neg" {
		t.Errorf("committed %q, want pos,neg", got)
	}
}

func TestRejectionKeepsInput(t *testing.T) {
	s := newLabelsScreen(" , ")
	s.Update(screen.RejectedMsg{Err: &wizard.RejectedError{Step: wizard.Labels, Field: "labels", Err: config.ErrNoLabels}})

	if s.Value() != " , " {
		t.Errorf("Value() = %q, input must be kept", s.Value())
	}
	if !strings.Contains(s.View(80, 20), config.ErrNoLabels.Error()) {
		t.Error("alert should be rendered")
	}
}

func TestMaskedValueNotRendered(t *testing.T) {
	s := New(Config{
		Title:  "Access Token",
		Prompt: "Token",
		Value:  "hf_secret",
		Masked: true,
		Build:  func(tok string) wizard.Action { return wizard.EnterToken{Token: tok} },
	})
	if strings.Contains(s.View(80, 20), "hf_secret") {
		t.Error("masked input must not render the token")
	}
}
