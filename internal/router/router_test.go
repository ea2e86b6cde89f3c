package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { s.updates++; return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if s1.updates != 1 {
		t.Errorf("expected 1 update, got %d", s1.updates)
	}
	if got := r.View(80, 24); got != "first" {
		t.Errorf("View() = %q, want %q", got, "first")
	}
}

func TestNilActive(t *testing.T) {
	r := New(nil)
	if cmd := r.Update(tea.KeyPressMsg{Code: 'a'}); cmd != nil {
		t.Error("expected nil cmd with no active screen")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view with no active screen")
	}
}
