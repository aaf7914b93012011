package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyj1227/class-board/internal/timetable"
)

type timetableMode int

const (
	timetableBrowse timetableMode = iota
	timetableCustom
	timetableNote
)

type timetableTab struct {
	day    *timetable.Day
	cursor int
	mode   timetableMode
	input  textinput.Model
}

func newTimetableTab() *timetableTab {
	return &timetableTab{
		day:   timetable.New(),
		input: newInput("> ", "", 60),
	}
}

func (t *timetableTab) ID() string      { return "timetable" }
func (t *timetableTab) Title() string   { return "Timetable" }
func (t *timetableTab) Scope() string   { return scopeTimetable }
func (t *timetableTab) Capturing() bool { return t.mode != timetableBrowse }

func (t *timetableTab) Deactivate(m *Model) { t.finish() }

// finish leaves any input mode, committing a custom subject.
func (t *timetableTab) finish() {
	if t.mode == timetableCustom {
		t.day.LeaveCustom(t.cursor)
	}
	t.mode = timetableBrowse
	t.input.Blur()
	t.input.Reset()
}

func (t *timetableTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if t.mode != timetableBrowse {
			var cmd tea.Cmd
			t.input, cmd = t.input.Update(msg)
			return cmd
		}
		return nil
	}
	switch t.mode {
	case timetableCustom:
		if km.String() == "tab" {
			if s, ok := timetable.Suggest(t.input.Value()); ok {
				t.input.SetValue(s)
				t.input.CursorEnd()
				t.day.SetCustom(t.cursor, s)
			}
			return nil
		}
		submit, cancel, cmd := editInput(m, &t.input, km)
		if submit || cancel {
			t.finish()
			p, _ := t.day.Period(t.cursor)
			m.SetStatus(fmt.Sprintf("Period %d: %s", t.cursor+1, p.Subject))
			return nil
		}
		t.day.SetCustom(t.cursor, t.input.Value())
		return cmd
	case timetableNote:
		submit, cancel, cmd := editInput(m, &t.input, km)
		switch {
		case submit:
			t.day.SetNote(t.cursor, strings.TrimSpace(t.input.Value()))
			t.finish()
			m.SetStatus(fmt.Sprintf("Note saved for period %d", t.cursor+1))
		case cancel:
			t.finish()
		}
		return cmd
	}

	keys, scope := m.keys, t.Scope()
	switch {
	case keys.IsAction(km, actionUp, scope):
		t.cursor = max(0, t.cursor-1)
	case keys.IsAction(km, actionDown, scope):
		t.cursor = min(timetable.Periods-1, t.cursor+1)
	case keys.IsAction(km, actionSubjectPrev, scope):
		t.day.CycleSubject(t.cursor, -1)
	case keys.IsAction(km, actionSubjectNext, scope):
		t.day.CycleSubject(t.cursor, 1)
	case keys.IsAction(km, actionCustom, scope):
		t.day.EnterCustom(t.cursor)
		t.mode = timetableCustom
		t.input.Placeholder = "Subject"
		t.input.Reset()
		return t.input.Focus()
	case keys.IsAction(km, actionNote, scope):
		p, _ := t.day.Period(t.cursor)
		t.mode = timetableNote
		t.input.Placeholder = "Note"
		t.input.SetValue(p.Note)
		return t.input.Focus()
	case keys.IsAction(km, actionComplete, scope):
		t.day.ToggleComplete(t.cursor)
	}
	return nil
}

func (t *timetableTab) View(m *Model, width, height int) string {
	lines := make([]string, 0, timetable.Periods*2+2)
	for i, p := range t.day.Periods() {
		subject := p.Subject
		if subject == "" {
			subject = mutedStyle.Render("(free)")
		}
		if p.Completed {
			subject = doneStyle.Render(p.Subject) + " " + successStyle.Render("✓")
		}
		if p.Custom {
			subject += mutedStyle.Render(" (custom)")
		}
		line := fmt.Sprintf("Period %d  %s", i+1, subject)
		if p.Note != "" {
			line += mutedStyle.Render("  · " + p.Note)
		}
		if i == t.cursor {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
		if i == t.cursor && t.mode != timetableBrowse {
			lines = append(lines, "    "+t.input.View())
			if t.mode == timetableCustom {
				if s, ok := timetable.Suggest(t.input.Value()); ok {
					lines = append(lines, "    "+warnStyle.Render("Did you mean "+s+"?")+mutedStyle.Render(" (tab)"))
				}
			}
		}
	}
	return Pane{Title: "Today's timetable", Content: strings.Join(lines, "\n"), Focused: t.mode != timetableBrowse}.Render(width, height)
}
