package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthgen/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for multi-line fragments.
type TextArea struct {
	Model   textarea.Model
	invalid bool
}

// NewTextArea creates a focused text area pre-filled with value.
func NewTextArea(placeholder, value string) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(value)
	ta.Focus()
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Editing clears the invalid marker.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.invalid = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetSize fits the area into width x height cells, border included.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(max(width-4, 10))
	t.Model.SetHeight(max(height-2, 3))
}

// View renders the text area inside a card, red when invalid.
func (t TextArea) View() string {
	if t.invalid {
		return theme.CardInvalid.Render(t.Model.View())
	}
	return theme.Card.Render(t.Model.View())
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetInvalid marks or clears the area as rejected.
func (t *TextArea) SetInvalid(invalid bool) {
	t.invalid = invalid
}

// Invalid reports whether the area is marked as rejected.
func (t TextArea) Invalid() bool {
	return t.invalid
}
