package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jyj1227/class-board/internal/sound"
)

// TimerPresets are the durations offered by the countdown.
var TimerPresets = []time.Duration{
	1 * time.Minute, 3 * time.Minute, 5 * time.Minute,
	10 * time.Minute, 15 * time.Minute, 30 * time.Minute,
}

type timerTab struct {
	presets  []time.Duration
	preset   int
	timer    timer.Model
	started  bool
	finished bool
	bar      progress.Model
}

func newTimerTab(initial time.Duration) *timerTab {
	presets := slices.Clone(TimerPresets)
	idx := slices.Index(presets, initial)
	if idx < 0 {
		presets = append(presets, initial)
		slices.Sort(presets)
		idx = slices.Index(presets, initial)
	}
	t := &timerTab{
		presets: presets,
		preset:  idx,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	t.reset()
	return t
}

func (t *timerTab) ID() string    { return "timer" }
func (t *timerTab) Title() string { return "Timer" }
func (t *timerTab) Scope() string { return scopeTimer }

func (t *timerTab) duration() time.Duration { return t.presets[t.preset] }

// Running reports whether the countdown is ticking.
func (t *timerTab) Running() bool { return t.started && t.timer.Running() }

// Remaining is the time left on the countdown.
func (t *timerTab) Remaining() time.Duration { return max(0, t.timer.Timeout) }

func (t *timerTab) reset() {
	// a fresh timer gets a new id, so ticks from the old one are ignored
	t.timer = timer.NewWithInterval(t.duration(), time.Second)
	t.started = false
	t.finished = false
}

func (t *timerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.TimeoutMsg:
		if msg.ID != t.timer.ID() {
			return nil
		}
		var cmd tea.Cmd
		t.timer, cmd = t.timer.Update(msg)
		t.finished = true
		m.SetStatus("Time is up!")
		m.Log.Info("timer finished", "duration", t.duration().String())
		return tea.Batch(cmd, m.Cue(sound.TimerDone))
	case timer.TickMsg:
		var cmd tea.Cmd
		t.timer, cmd = t.timer.Update(msg)
		return cmd
	case tea.KeyMsg:
		keys, scope := m.keys, t.Scope()
		switch {
		case keys.IsAction(msg, actionTimerToggle, scope):
			return t.toggle(m)
		case keys.IsAction(msg, actionTimerReset, scope):
			t.reset()
			m.SetStatus("Timer reset to " + formatClock(t.duration()))
		case keys.IsAction(msg, actionPresetPrev, scope):
			t.choose(m, t.preset-1)
		case keys.IsAction(msg, actionPresetNext, scope):
			t.choose(m, t.preset+1)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return t.toggle(m)
		}
	}
	return nil
}

func (t *timerTab) choose(m *Model, idx int) {
	if idx < 0 || idx >= len(t.presets) {
		return
	}
	t.preset = idx
	t.reset()
	m.SetStatus("Timer set to " + formatClock(t.duration()))
}

func (t *timerTab) toggle(m *Model) tea.Cmd {
	if t.finished {
		t.reset()
	}
	if !t.started {
		t.started = true
		m.SetStatus("Timer started")
		return t.timer.Init()
	}
	// each pause and resume swaps in a fresh timer so the tick in flight
	// carries a stale id and is dropped
	remaining := t.Remaining()
	if t.timer.Running() {
		t.timer = timer.NewWithInterval(remaining, time.Second)
		t.timer, _ = t.timer.Update(t.timer.Stop()())
		m.SetStatus("Timer paused")
		return nil
	}
	t.timer = timer.NewWithInterval(remaining, time.Second)
	m.SetStatus("Timer resumed")
	return t.timer.Init()
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (t *timerTab) View(m *Model, width, height int) string {
	remaining := t.Remaining()
	clock := bigTextStyle
	state := "paused"
	switch {
	case t.finished:
		clock = clock.BorderForeground(colorError).Foreground(colorError)
		state = "time is up"
	case t.Running():
		clock = clock.BorderForeground(colorSuccess)
		state = "running"
	case !t.started:
		state = "ready"
	}

	t.bar.Width = max(10, min(60, width-10))
	frac := 0.0
	if total := t.duration(); total > 0 {
		frac = float64(remaining) / float64(total)
	}

	presets := make([]string, 0, len(t.presets))
	for i, p := range t.presets {
		label := fmt.Sprintf(" %dm ", int(p/time.Minute))
		if i == t.preset {
			label = cursorStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		presets = append(presets, label)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		clock.Render(formatClock(remaining)),
		"",
		t.bar.ViewAs(frac),
		"",
		accentStyle.Render(state),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, presets...),
	)
	content := lipgloss.Place(max(1, width-4), max(1, height-2), lipgloss.Center, lipgloss.Center, body)
	return Pane{Title: "Timer", Content: content}.Render(width, height)
}
