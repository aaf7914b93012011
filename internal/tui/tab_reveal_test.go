package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyj1227/class-board/internal/reveal"
	"github.com/jyj1227/class-board/internal/roster"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestDiceRollSettles(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "5")
	dice := m.tabs[4].(*diceTab).dice

	m, cmd := update(t, m, keyMsg("space"))
	require.NotNil(t, cmd)
	require.True(t, dice.Rolling())
	assert.Contains(t, m.View(), "Rolling")

	m = press(t, m, "space")
	assert.True(t, dice.Rolling(), "second roll is ignored")

	m, _ = update(t, m, diceSpinMsg{token: 1})
	m, _ = update(t, m, diceSettleMsg{token: 1})
	assert.False(t, dice.Rolling())
	assert.GreaterOrEqual(t, dice.Face(), 1)
	assert.LessOrEqual(t, dice.Face(), reveal.DiceFaces)
	assert.Contains(t, m.status, "Rolled a")

	// stale settle from an old roll
	before := m.status
	m, _ = update(t, m, diceSettleMsg{token: 1})
	assert.Equal(t, before, m.status)
}

func TestDiceClickRolls(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "5")
	m, _ = update(t, m, leftClick(10, 10))
	assert.True(t, m.tabs[4].(*diceTab).dice.Rolling())
}

func TestPickerRunsToWinner(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "6")
	picker := m.tabs[5].(*pickerTab).picker

	m = press(t, m, "space")
	require.True(t, picker.Picking())
	for range reveal.PickerTicks {
		m, _ = update(t, m, pickerTickMsg{token: 1})
	}
	assert.False(t, picker.Picking())
	w, ok := picker.Winner()
	require.True(t, ok)
	assert.NotEqual(t, roster.SupervisorID, w.ID)
	assert.Contains(t, m.status, "was picked")

	view := m.View()
	assert.Contains(t, view, "1st")
	assert.Contains(t, view, w.Name)
}

func TestPickerNeverPicksSupervisor(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "6")
	picker := m.tabs[5].(*pickerTab).picker
	for run := 1; run <= 30; run++ {
		m = press(t, m, "p")
		for range reveal.PickerTicks {
			m, _ = update(t, m, pickerTickMsg{token: run})
		}
		w, ok := picker.Winner()
		require.True(t, ok)
		assert.NotEqual(t, roster.SupervisorID, w.ID)
	}
	assert.Len(t, picker.History(), reveal.HistoryLimit)
}
