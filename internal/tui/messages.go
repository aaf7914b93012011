package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type TabSwitchMsg struct {
	Index int
}

type clockTickMsg time.Time

// Timed messages carry the token of the sequence that scheduled them. A
// message whose token is no longer current is dropped.
type (
	holdExpiredMsg struct {
		id    int
		token int
	}
	diceSpinMsg         struct{ token int }
	diceSettleMsg       struct{ token int }
	pickerTickMsg       struct{ token int }
	celebrationDoneMsg  struct{ token int }
	voteResetExpiredMsg struct{ token int }
	wordClearExpiredMsg struct{ token int }
)

func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// after schedules msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
