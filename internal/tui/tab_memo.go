package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

type memoTab struct {
	area    textarea.Model
	preview bool

	// last rendered preview
	rendered     string
	renderedFrom string
	renderedW    int
}

func newMemoTab() *memoTab {
	area := textarea.New()
	area.Placeholder = "Write anything for the class. Markdown works in preview."
	area.ShowLineNumbers = false
	area.CharLimit = 0
	return &memoTab{area: area}
}

func (t *memoTab) ID() string      { return "memo" }
func (t *memoTab) Title() string   { return "Memo" }
func (t *memoTab) Scope() string   { return scopeMemo }
func (t *memoTab) Capturing() bool { return t.area.Focused() }

func (t *memoTab) Deactivate(m *Model) { t.area.Blur() }

// Text is the memo contents.
func (t *memoTab) Text() string { return t.area.Value() }

func (t *memoTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	if t.area.Focused() {
		if km, ok := msg.(tea.KeyMsg); ok && m.keys.IsAction(km, actionCancel, scopeInput) {
			t.area.Blur()
			m.SetStatus("Memo saved")
			return nil
		}
		var cmd tea.Cmd
		t.area, cmd = t.area.Update(msg)
		return cmd
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	keys, scope := m.keys, t.Scope()
	switch {
	case keys.IsAction(km, actionMemoEdit, scope):
		t.preview = false
		return t.area.Focus()
	case keys.IsAction(km, actionMemoClear, scope):
		t.area.Reset()
		m.SetStatus("Memo cleared")
	case keys.IsAction(km, actionMemoPreview, scope):
		t.preview = !t.preview
	}
	return nil
}

func (t *memoTab) renderPreview(m *Model, width int) string {
	text := t.area.Value()
	if strings.TrimSpace(text) == "" {
		return mutedStyle.Render("Nothing written yet.")
	}
	if text == t.renderedFrom && width == t.renderedW {
		return t.rendered
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(10, width)),
	)
	if err != nil {
		m.Log.Debug("memo preview unavailable", "err", err)
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		m.Log.Debug("memo preview failed", "err", err)
		return text
	}
	t.rendered, t.renderedFrom, t.renderedW = strings.Trim(out, "\n"), text, width
	return t.rendered
}

func (t *memoTab) View(m *Model, width, height int) string {
	title := "Memo"
	var content string
	if t.preview {
		title = "Memo (preview)"
		content = t.renderPreview(m, width-6)
	} else {
		t.area.SetWidth(max(10, width-4))
		t.area.SetHeight(max(3, height-2))
		content = t.area.View()
	}
	return Pane{Title: title, Content: content, Focused: t.area.Focused()}.Render(width, height)
}
