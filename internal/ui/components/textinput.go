package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// answerRunes are the characters a decimal answer can contain.
const answerRunes = "0123456789,.-+ "

// TextInput wraps bubbles/textinput for decimal answers.
type TextInput struct {
	Model       textinput.Model
	DecimalOnly bool
}

// NewTextInput creates a new styled, focused text input.
func NewTextInput(placeholder string, decimalOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:       ti,
		DecimalOnly: decimalOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. With DecimalOnly set, printable keys outside
// digits, sign, separators and space are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.DecimalOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if !strings.ContainsRune(answerRunes, r) {
					return t, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
