package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jyj1227/class-board/internal/notice"
)

type noticeMode int

const (
	noticeBrowse noticeMode = iota
	noticeAddTodo
	noticeEditLunch
)

type noticeTab struct {
	board  *notice.Board
	cursor int
	mode   noticeMode
	input  textinput.Model
}

func newNoticeTab() *noticeTab {
	return &noticeTab{
		board: notice.New(),
		input: newInput("> ", "", 200),
	}
}

func (t *noticeTab) ID() string      { return "notice" }
func (t *noticeTab) Title() string   { return "Notice" }
func (t *noticeTab) Scope() string   { return scopeNotice }
func (t *noticeTab) Capturing() bool { return t.mode != noticeBrowse }

func (t *noticeTab) Deactivate(m *Model) { t.stopEditing() }

func (t *noticeTab) stopEditing() {
	t.mode = noticeBrowse
	t.input.Blur()
	t.input.Reset()
}

func (t *noticeTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if t.mode != noticeBrowse {
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return cmd
		}
		return nil
	}
	if t.mode != noticeBrowse {
		submit, cancel, cmd := editInput(m, &t.input, km)
		switch {
		case submit:
			t.commit(m)
			t.stopEditing()
		case cancel:
			t.stopEditing()
		}
		return cmd
	}

	todos := t.board.Todos()
	keys, scope := m.keys, t.Scope()
	switch {
	case keys.IsAction(km, actionUp, scope):
		t.cursor = max(0, t.cursor-1)
	case keys.IsAction(km, actionDown, scope):
		t.cursor = min(max(0, len(todos)-1), t.cursor+1)
	case keys.IsAction(km, actionTodoAdd, scope):
		t.mode = noticeAddTodo
		t.input.Placeholder = "New task"
		return t.input.Focus()
	case keys.IsAction(km, actionLunchEdit, scope):
		t.mode = noticeEditLunch
		t.input.Placeholder = "Today's lunch"
		t.input.SetValue(t.board.Lunch)
		return t.input.Focus()
	case keys.IsAction(km, actionTodoToggle, scope):
		if t.cursor < len(todos) {
			t.board.Toggle(todos[t.cursor].ID)
		}
	case keys.IsAction(km, actionTodoDelete, scope):
		if t.cursor < len(todos) {
			t.board.Delete(todos[t.cursor].ID)
			t.cursor = min(t.cursor, max(0, t.board.Len()-1))
			m.SetStatus("Task deleted")
		}
	}
	return nil
}

func (t *noticeTab) commit(m *Model) {
	switch t.mode {
	case noticeAddTodo:
		if todo, ok := t.board.Add(t.input.Value()); ok {
			t.cursor = t.board.Len() - 1
			m.SetStatus("Added: " + todo.Text)
		}
	case noticeEditLunch:
		t.board.Lunch = strings.TrimSpace(t.input.Value())
		m.SetStatus("Lunch menu updated")
	}
}

func (t *noticeTab) View(m *Model, width, height int) string {
	todos := t.board.Todos()
	lines := []string{accentStyle.Render(fmt.Sprintf("Today's tasks (%d left)", t.board.Remaining())), ""}
	if len(todos) == 0 {
		lines = append(lines, mutedStyle.Render("Nothing to do. Press a to add a task."))
	}
	for i, todo := range todos {
		box, text := "[ ]", todo.Text
		if todo.Completed {
			box, text = successStyle.Render("[x]"), doneStyle.Render(text)
		}
		line := box + " " + text
		if i == t.cursor && t.mode == noticeBrowse {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if t.mode == noticeAddTodo {
		lines = append(lines, "", t.input.View())
	}

	lunch := t.board.Lunch
	if strings.TrimSpace(lunch) == "" {
		lunch = mutedStyle.Render("No menu yet. Press m to write it.")
	}
	if t.mode == noticeEditLunch {
		lunch = t.input.View()
	}

	half := max(20, width/2)
	left := Pane{Title: "Notice board", Content: strings.Join(lines, "\n"), Focused: t.mode == noticeAddTodo}.Render(half, height)
	right := Pane{Title: "Lunch menu", Content: lunch, Focused: t.mode == noticeEditLunch}.Render(max(4, width-half), height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
