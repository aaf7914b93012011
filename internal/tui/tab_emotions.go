package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyj1227/class-board/internal/gesture"
	"github.com/jyj1227/class-board/internal/roster"
)

const (
	emotionCellWidth = 14
	// the grid sits under a hint line and a blank line inside the pane
	emotionGridTop  = paneContentTop + 2
	emotionGridLeft = paneContentLeft
)

type emotionsTab struct {
	tracker  *gesture.Tracker
	cursor   int
	pressed  int
	pressing bool
}

func newEmotionsTab() *emotionsTab {
	return &emotionsTab{tracker: gesture.NewTracker()}
}

func (t *emotionsTab) ID() string    { return "emotions" }
func (t *emotionsTab) Title() string { return "Emotions" }
func (t *emotionsTab) Scope() string { return scopeEmotions }

func (t *emotionsTab) Deactivate(m *Model) {
	t.tracker.CancelAll()
	t.pressing = false
}

func emotionCols(width int) int {
	return max(1, (width-2*paneContentLeft)/emotionCellWidth)
}

// cellAt maps a body coordinate onto a roster index, or -1.
func (t *emotionsTab) cellAt(m *Model, x, y int) int {
	cx, cy := x-emotionGridLeft, y-emotionGridTop
	if cx < 0 || cy < 0 {
		return -1
	}
	cols := emotionCols(m.width)
	col := cx / emotionCellWidth
	if col >= cols || cx%emotionCellWidth >= emotionCellWidth-1 {
		return -1
	}
	idx := cy*cols + col
	if idx >= m.Roster.Len() {
		return -1
	}
	return idx
}

func (t *emotionsTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case holdExpiredMsg:
		if t.tracker.Expire(msg.id, msg.token) == gesture.Hold {
			t.toggleStar(m, msg.id)
		}
		return nil
	case tea.MouseMsg:
		return t.handleMouse(m, msg)
	case tea.KeyMsg:
		keys, scope := m.keys, t.Scope()
		cols := emotionCols(m.width)
		switch {
		case keys.IsAction(msg, actionLeft, scope):
			t.move(m, -1)
		case keys.IsAction(msg, actionRight, scope):
			t.move(m, 1)
		case keys.IsAction(msg, actionUp, scope):
			t.move(m, -cols)
		case keys.IsAction(msg, actionDown, scope):
			t.move(m, cols)
		case keys.IsAction(msg, actionEmotionTap, scope):
			if p, ok := m.Roster.At(t.cursor); ok {
				t.cycle(m, p.ID)
			}
		case keys.IsAction(msg, actionEmotionStar, scope):
			if p, ok := m.Roster.At(t.cursor); ok {
				t.toggleStar(m, p.ID)
			}
		}
	}
	return nil
}

func (t *emotionsTab) handleMouse(m *Model, msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		idx := t.cellAt(m, msg.X, msg.Y)
		p, ok := m.Roster.At(idx)
		if !ok {
			return nil
		}
		t.cursor = idx
		t.pressed, t.pressing = p.ID, true
		token := t.tracker.Press(p.ID, m.Now())
		return after(gesture.Threshold, holdExpiredMsg{id: p.ID, token: token})
	case tea.MouseActionMotion:
		if !t.pressing {
			return nil
		}
		if p, ok := m.Roster.At(t.cellAt(m, msg.X, msg.Y)); !ok || p.ID != t.pressed {
			t.tracker.Leave(t.pressed)
			t.pressing = false
		}
	case tea.MouseActionRelease:
		if !t.pressing {
			return nil
		}
		t.pressing = false
		switch t.tracker.Release(t.pressed, m.Now()) {
		case gesture.Tap:
			t.cycle(m, t.pressed)
		case gesture.Hold:
			t.toggleStar(m, t.pressed)
		}
	}
	return nil
}

func (t *emotionsTab) move(m *Model, delta int) {
	next := t.cursor + delta
	if next < 0 || next >= m.Roster.Len() {
		return
	}
	t.cursor = next
}

func (t *emotionsTab) cycle(m *Model, id int) {
	p, ok := m.Roster.Get(id)
	if !ok {
		return
	}
	next := p.Emotion.Next()
	m.Roster.Update(id, roster.WithEmotion(next))
	m.SetStatus(fmt.Sprintf("%s %s is feeling %s", participantLabel(p), next.Symbol(), next))
}

func (t *emotionsTab) toggleStar(m *Model, id int) {
	p, ok := m.Roster.Get(id)
	if !ok {
		return
	}
	m.Roster.Update(id, roster.WithStar(!p.Star))
	if p.Star {
		m.SetStatus(participantLabel(p) + " star removed")
	} else {
		m.SetStatus(participantLabel(p) + " earned a star ★")
	}
	m.Log.Debug("star toggled", "participant", p.ID, "star", !p.Star)
}

func participantLabel(p roster.Participant) string {
	if p.IsSupervisor() {
		return p.Name
	}
	return "No. " + p.Name
}

func (t *emotionsTab) View(m *Model, width, height int) string {
	cols := emotionCols(width)
	people := m.Roster.All()
	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("click or enter: next mood   hold or s: star   ★ %d", m.Roster.Stars())))
	b.WriteString("\n\n")
	for i, p := range people {
		cell := participantLabel(p) + " " + p.Emotion.Symbol()
		if p.Star {
			cell += " " + starStyle.Render("★")
		}
		cell = padRight(cell, emotionCellWidth-1)
		if i == t.cursor {
			cell = cursorStyle.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%cols == 0 || i == len(people)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return Pane{Title: "Emotion board", Content: strings.TrimSuffix(b.String(), "\n")}.Render(width, height)
}
