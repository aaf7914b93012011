package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyj1227/class-board/internal/roster"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	m := New(Options{
		Rand: rand.New(rand.NewPCG(7, 11)),
		Now:  clock.Now,
	})
	return m, clock
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewHasTenTabs(t *testing.T) {
	m, _ := newTestModel(t)
	require.Len(t, m.tabs, 10)
	ids := make([]string, 0, len(m.tabs))
	for _, tab := range m.tabs {
		ids = append(ids, tab.ID())
	}
	assert.Equal(t, []string{"emotions", "stats", "timetable", "timer", "dice", "picker", "memo", "notice", "vote", "wordcloud"}, ids)
	assert.Equal(t, roster.Size+1, m.Roster.Len())
}

func TestTabSwitchingKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "3")
	assert.Equal(t, 2, m.activeTab)
	m = press(t, m, "0")
	assert.Equal(t, 9, m.activeTab)
	m = press(t, m, "tab")
	assert.Equal(t, 0, m.activeTab, "tab wraps to the first widget")
	m = press(t, m, "shift+tab")
	assert.Equal(t, 9, m.activeTab)
	m, _ = update(t, m, TabSwitchMsg{Index: 4})
	assert.Equal(t, 4, m.activeTab)
	m, _ = update(t, m, TabSwitchMsg{Index: 42})
	assert.Equal(t, 4, m.activeTab)
}

func TestHeaderClickSwitchesTab(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 0, m.tabAt(0))

	x := len("1:Emotions") + 2
	assert.Equal(t, 1, m.tabAt(x))
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: tabStripRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.activeTab)
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, keyMsg("q"))
	assert.True(t, isQuit(cmd))

	m, cmd = update(t, m, keyMsg("ctrl+c"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Goodbye\n", m.View())
}

func TestQDoesNotQuitWhileTyping(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "0", "a")
	assert.Equal(t, scopeInput, m.ActiveScope())

	m, cmd := update(t, m, keyMsg("q"))
	assert.False(t, isQuit(cmd))
	m = press(t, m, "1")
	assert.Equal(t, 9, m.activeTab, "digits are typed, not tab switches")

	wc := m.tabs[9].(*wordCloudTab)
	assert.Equal(t, "q1", wc.input.Value())

	_, cmd = update(t, m, keyMsg("ctrl+c"))
	assert.True(t, isQuit(cmd))
}

func TestClockTick(t *testing.T) {
	m, _ := newTestModel(t)
	at := time.Date(2026, 3, 2, 10, 30, 15, 0, time.UTC)
	m, cmd := update(t, m, clockTickMsg(at))
	assert.NotNil(t, cmd, "clock reschedules itself")
	assert.Contains(t, renderHeader(m), "2026-03-02 10:30:15")
}

func TestStatusMsg(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, StatusMsg{Text: "boom", IsErr: true})
	assert.True(t, m.statusErr)
	assert.Contains(t, RenderStatusBar(m), "boom")
}

func TestViewFitsWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	for i := range m.tabs {
		m.SwitchTab(i)
		view := m.View()
		assert.Equal(t, 30, len(strings.Split(view, "\n")), "tab %s", m.tabs[i].ID())
	}
}

func TestFooterShowsScopedHints(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "9")
	footer := RenderFooter(m)
	assert.Contains(t, footer, "topic")
	assert.NotContains(t, footer, "next mood")

	m = press(t, m, "a", "e")
	assert.Contains(t, RenderFooter(m), "save")
}

func TestSwitchingTabsCancelsPendingPress(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: bodyTop + emotionGridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tab := m.tabs[0].(*emotionsTab)
	require.Equal(t, 1, tab.tracker.PendingCount())

	m = press(t, m, "2")
	assert.Equal(t, 0, tab.tracker.PendingCount())
}
