package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyj1227/class-board/internal/gesture"
	"github.com/jyj1227/class-board/internal/roster"
)

// cellPoint returns the screen coordinate of roster index idx.
func cellPoint(m Model, idx int) (int, int) {
	cols := emotionCols(m.width)
	return emotionGridLeft + (idx%cols)*emotionCellWidth, bodyTop + emotionGridTop + idx/cols
}

func mouse(m Model, idx int, action tea.MouseAction) tea.MouseMsg {
	x, y := cellPoint(m, idx)
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func participant(t *testing.T, m Model, idx int) roster.Participant {
	t.Helper()
	p, ok := m.Roster.At(idx)
	require.True(t, ok)
	return p
}

func TestEmotionTapCyclesWithKeyboard(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, roster.Neutral, participant(t, m, 0).Emotion)

	m = press(t, m, "enter")
	assert.Equal(t, roster.Happy, participant(t, m, 0).Emotion)

	m = press(t, m, "space", "enter", "enter", "enter", "enter")
	assert.Equal(t, roster.Neutral, participant(t, m, 0).Emotion, "six taps return to the start")
	assert.False(t, participant(t, m, 0).Star)
}

func TestEmotionStarKeyKeepsEmotion(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "right", "enter", "s")
	p := participant(t, m, 1)
	assert.True(t, p.Star)
	assert.Equal(t, roster.Happy, p.Emotion)
	assert.False(t, participant(t, m, 0).Star)

	m = press(t, m, "s")
	assert.False(t, participant(t, m, 1).Star)
}

func TestEmotionCursorStaysInRoster(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "left", "up")
	assert.Equal(t, 0, m.tabs[0].(*emotionsTab).cursor)
	for range m.Roster.Len() + 3 {
		m = press(t, m, "right")
	}
	assert.Equal(t, m.Roster.Len()-1, m.tabs[0].(*emotionsTab).cursor)
}

func TestEmotionMouseTap(t *testing.T) {
	m, clock := newTestModel(t)
	m, cmd := update(t, m, mouse(m, 2, tea.MouseActionPress))
	assert.NotNil(t, cmd, "press schedules the hold timer")
	clock.Advance(200 * time.Millisecond)
	m, _ = update(t, m, mouse(m, 2, tea.MouseActionRelease))

	p := participant(t, m, 2)
	assert.Equal(t, roster.Happy, p.Emotion)
	assert.False(t, p.Star)
}

func TestEmotionMouseHold(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, mouse(m, 3, tea.MouseActionPress))
	id := participant(t, m, 3).ID

	clock.Advance(gesture.Threshold)
	m, _ = update(t, m, holdExpiredMsg{id: id, token: 1})
	assert.True(t, participant(t, m, 3).Star, "hold fires before release")

	m, _ = update(t, m, mouse(m, 3, tea.MouseActionRelease))
	p := participant(t, m, 3)
	assert.True(t, p.Star)
	assert.Equal(t, roster.Neutral, p.Emotion, "release after a hold does nothing")
}

func TestEmotionMouseHoldWithoutTimer(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, mouse(m, 0, tea.MouseActionPress))
	clock.Advance(time.Second)
	m, _ = update(t, m, mouse(m, 0, tea.MouseActionRelease))
	p := participant(t, m, 0)
	assert.True(t, p.Star)
	assert.Equal(t, roster.Neutral, p.Emotion)

	// the late timer is stale
	m, _ = update(t, m, holdExpiredMsg{id: p.ID, token: 1})
	assert.True(t, participant(t, m, 0).Star)
}

func TestEmotionPointerLeaveCancels(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = update(t, m, mouse(m, 4, tea.MouseActionPress))
	m, _ = update(t, m, mouse(m, 5, tea.MouseActionMotion))
	clock.Advance(time.Second)
	m, _ = update(t, m, holdExpiredMsg{id: participant(t, m, 4).ID, token: 1})
	m, _ = update(t, m, mouse(m, 4, tea.MouseActionRelease))

	p := participant(t, m, 4)
	assert.Equal(t, roster.Neutral, p.Emotion)
	assert.False(t, p.Star)
}

func TestEmotionGridMissIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, tea.MouseMsg{X: 0, Y: bodyTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.tabs[0].(*emotionsTab).tracker.PendingCount())
}

func TestSupervisorCellIsClickable(t *testing.T) {
	m, clock := newTestModel(t)
	last := m.Roster.Len() - 1
	require.True(t, participant(t, m, last).IsSupervisor())
	m, _ = update(t, m, mouse(m, last, tea.MouseActionPress))
	clock.Advance(50 * time.Millisecond)
	m, _ = update(t, m, mouse(m, last, tea.MouseActionRelease))
	assert.Equal(t, roster.Happy, participant(t, m, last).Emotion)
}

func TestStatsReflectRoster(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "enter", "right", "enter", "enter")
	m = press(t, m, "2")
	view := m.View()
	assert.Contains(t, view, "2 of 26 participants")
	assert.Contains(t, view, "50%")
}

func TestStatsCountsEveryParticipant(t *testing.T) {
	m, _ := newTestModel(t)
	for _, p := range m.Roster.All() {
		require.True(t, m.Roster.Update(p.ID, roster.WithEmotion(roster.Happy)))
	}
	m = press(t, m, "2")
	view := m.View()
	assert.Contains(t, view, "26 of 26 participants")
	assert.Contains(t, view, "100%")
}
