package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyj1227/class-board/internal/timetable"
)

func TestTimetableCycleAndComplete(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "3")
	day := m.tabs[2].(*timetableTab).day

	m = press(t, m, "right")
	p, _ := day.Period(0)
	assert.Equal(t, timetable.Subjects[1], p.Subject)

	m = press(t, m, "left", "left")
	p, _ = day.Period(0)
	assert.Equal(t, timetable.Subjects[len(timetable.Subjects)-1], p.Subject)

	m = press(t, m, "down", "x")
	p, _ = day.Period(1)
	assert.True(t, p.Completed)
	assert.Contains(t, m.View(), "✓")
}

func TestTimetableCustomSubjectWithSuggestion(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "3", "down", "c")
	tab := m.tabs[2].(*timetableTab)
	require.True(t, tab.Capturing())

	m = typeText(t, m, "Scince")
	assert.Contains(t, m.View(), "Did you mean Science?")
	p, _ := tab.day.Period(1)
	assert.Equal(t, "Scince", p.Subject)
	assert.True(t, p.Custom)

	m = press(t, m, "tab", "enter")
	p, _ = tab.day.Period(1)
	assert.Equal(t, "Science", p.Subject)
	assert.False(t, p.Custom)
	assert.False(t, tab.Capturing())
}

func TestTimetableEmptyCustomFallsBack(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "3", "c", "esc")
	p, _ := m.tabs[2].(*timetableTab).day.Period(0)
	assert.Equal(t, timetable.Subjects[0], p.Subject)
}

func TestTimetableNote(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "3", "n")
	m = typeText(t, m, "bring recorders")
	m = press(t, m, "enter")
	p, _ := m.tabs[2].(*timetableTab).day.Period(0)
	assert.Equal(t, "bring recorders", p.Note)
}

func TestTimerPresetsAndToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "4")
	tab := m.tabs[3].(*timerTab)
	assert.Equal(t, 5*time.Minute, tab.Remaining())
	assert.Contains(t, m.View(), "05:00")

	m = press(t, m, "right")
	assert.Equal(t, 10*time.Minute, tab.Remaining())
	m = press(t, m, "left", "left", "left", "left")
	assert.Equal(t, time.Minute, tab.Remaining())

	m, cmd := update(t, m, keyMsg("space"))
	assert.NotNil(t, cmd)
	assert.True(t, tab.Running())

	m = press(t, m, "r")
	assert.False(t, tab.Running())
	assert.Equal(t, time.Minute, tab.Remaining())
}

func TestTimerTimeout(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "4", "space")
	tab := m.tabs[3].(*timerTab)

	m, _ = update(t, m, timer.TimeoutMsg{ID: tab.timer.ID() + 1000})
	assert.False(t, tab.finished, "other timers are ignored")

	m, _ = update(t, m, timer.TimeoutMsg{ID: tab.timer.ID()})
	assert.True(t, tab.finished)
	assert.Equal(t, "Time is up!", m.status)
}

func TestTimerPauseResumeDropsStaleTicks(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "4", "space")
	tab := m.tabs[3].(*timerTab)
	started := tab.timer.ID()

	m = press(t, m, "space")
	require.False(t, tab.Running())
	paused := tab.timer.ID()
	m, _ = update(t, m, timer.TickMsg{ID: started})
	assert.Equal(t, 5*time.Minute, tab.Remaining(), "no ticks while paused")

	m, cmd := update(t, m, keyMsg("space"))
	require.NotNil(t, cmd)
	require.True(t, tab.Running())
	m, _ = update(t, m, timer.TickMsg{ID: started})
	m, _ = update(t, m, timer.TickMsg{ID: paused})
	assert.Equal(t, 5*time.Minute, tab.Remaining(), "ticks from earlier runs are dropped")

	m, _ = update(t, m, timer.TickMsg{ID: tab.timer.ID()})
	assert.Equal(t, 5*time.Minute-time.Second, tab.Remaining())
	assert.Equal(t, "Timer resumed", m.status)
}

func TestTimerCustomDefault(t *testing.T) {
	tab := newTimerTab(7 * time.Minute)
	assert.Equal(t, 7*time.Minute, tab.Remaining())
	assert.Contains(t, tab.presets, 7*time.Minute)
	assert.Len(t, tab.presets, len(TimerPresets)+1)
}

func TestMemoEditClearAndPreview(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "7", "e")
	tab := m.tabs[6].(*memoTab)
	require.True(t, tab.Capturing())

	m = typeText(t, m, "# Field trip")
	m = press(t, m, "q")
	assert.False(t, m.quitting)
	m = press(t, m, "esc")
	assert.False(t, tab.Capturing())
	assert.Equal(t, "# Field tripq", tab.Text())

	m = press(t, m, "m")
	view := m.View()
	assert.Contains(t, view, "Memo (preview)")
	assert.Contains(t, view, "Field")

	m = press(t, m, "ctrl+l")
	assert.Empty(t, tab.Text())
}

func TestNoticeTodos(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "8")
	board := m.tabs[7].(*noticeTab).board
	start := board.Len()

	m = press(t, m, "a", "enter")
	assert.Equal(t, start, board.Len(), "blank todo is ignored")

	m = press(t, m, "a")
	m = typeText(t, m, "Water the plants")
	m = press(t, m, "enter")
	require.Equal(t, start+1, board.Len())
	todos := board.Todos()
	assert.Equal(t, "Water the plants", todos[len(todos)-1].Text)

	m = press(t, m, "x")
	assert.True(t, board.Todos()[len(todos)-1].Completed)

	m = press(t, m, "d")
	assert.Equal(t, start, board.Len())
}

func TestNoticeLunch(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "8", "m")
	m = typeText(t, m, "Bibimbap")
	m = press(t, m, "enter")
	assert.Equal(t, "Bibimbap", m.tabs[7].(*noticeTab).board.Lunch)
	assert.Contains(t, m.View(), "Bibimbap")
}

func TestWordCloudAddRepeatAndClear(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "0", "a")
	cloud := m.tabs[9].(*wordCloudTab).cloud

	m = typeText(t, m, "kind")
	m = press(t, m, "enter")
	m = typeText(t, m, "kind")
	m = press(t, m, "enter")
	m = typeText(t, m, "brave")
	m = press(t, m, "enter", "enter", "esc")

	require.Equal(t, 2, cloud.Len())
	words := cloud.Words()
	assert.Equal(t, 2, words[0].Count)
	assert.Contains(t, m.View(), "kind ×2")

	m = press(t, m, "s")
	assert.Equal(t, 2, cloud.Len())

	m = press(t, m, "c")
	assert.Equal(t, 2, cloud.Len(), "first clear only arms")
	m = press(t, m, "c")
	assert.Equal(t, 0, cloud.Len())
}

func TestWordCloudClearExpires(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "0", "a")
	m = typeText(t, m, "hello")
	m = press(t, m, "enter", "esc", "c")
	cloud := m.tabs[9].(*wordCloudTab).cloud
	require.True(t, cloud.ClearArmed())

	m, _ = update(t, m, wordClearExpiredMsg{token: 1})
	assert.False(t, cloud.ClearArmed())
	m = press(t, m, "c")
	assert.Equal(t, 1, cloud.Len())
}
