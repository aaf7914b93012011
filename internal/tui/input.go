package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newInput(prompt, placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.PromptStyle = accentStyle
	return in
}

// editInput feeds msg to a focused input. It reports submit on enter and
// cancel on esc; any other key edits the value.
func editInput(m *Model, in *textinput.Model, msg tea.KeyMsg) (submit, cancel bool, cmd tea.Cmd) {
	switch {
	case m.keys.IsAction(msg, actionSubmit, scopeInput):
		return true, false, nil
	case m.keys.IsAction(msg, actionCancel, scopeInput):
		return false, true, nil
	}
	*in, cmd = in.Update(msg)
	return false, false, cmd
}
