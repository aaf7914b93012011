package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jyj1227/class-board/internal/sound"
	"github.com/jyj1227/class-board/internal/vote"
)

type voteEdit int

const (
	voteEditNone voteEdit = iota
	voteEditTopic
	voteEditOption
)

// Options start this many content rows into the pane: topic, phase line and
// a blank line.
const voteOptionsTop = paneContentTop + 3

type voteTab struct {
	session *vote.Session
	cursor  int
	editing voteEdit
	input   textinput.Model
}

func newVoteTab() *voteTab {
	return &voteTab{
		session: vote.New(),
		input:   newInput("> ", "", 80),
	}
}

func (t *voteTab) ID() string      { return "vote" }
func (t *voteTab) Title() string   { return "Vote" }
func (t *voteTab) Scope() string   { return scopeVote }
func (t *voteTab) Capturing() bool { return t.editing != voteEditNone }

func (t *voteTab) Deactivate(m *Model) { t.stopEditing() }

func (t *voteTab) stopEditing() {
	t.editing = voteEditNone
	t.input.Blur()
	t.input.Reset()
}

func (t *voteTab) current() (vote.Option, bool) {
	opts := t.session.Options()
	if t.cursor < 0 || t.cursor >= len(opts) {
		return vote.Option{}, false
	}
	return opts[t.cursor], true
}

func (t *voteTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case celebrationDoneMsg:
		t.session.EndCelebration(msg.token)
		return nil
	case voteResetExpiredMsg:
		if t.session.ExpireReset(msg.token) {
			m.SetStatus("Reset cancelled")
		}
		return nil
	case tea.MouseMsg:
		return t.handleMouse(m, msg)
	case tea.KeyMsg:
		if t.editing != voteEditNone {
			return t.handleInput(m, msg)
		}
		return t.handleKey(m, msg)
	}
	if t.editing != voteEditNone {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}
	return nil
}

func (t *voteTab) handleInput(m *Model, msg tea.KeyMsg) tea.Cmd {
	submit, cancel, cmd := editInput(m, &t.input, msg)
	switch {
	case submit:
		switch t.editing {
		case voteEditTopic:
			t.session.SetTopic(t.input.Value())
		case voteEditOption:
			if o, ok := t.current(); ok {
				t.session.UpdateOptionText(o.ID, t.input.Value())
			}
		}
		t.stopEditing()
	case cancel:
		t.stopEditing()
	}
	return cmd
}

func (t *voteTab) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	keys, scope := m.keys, t.Scope()
	n := len(t.session.Options())
	switch {
	case keys.IsAction(msg, actionUp, scope):
		t.cursor = max(0, t.cursor-1)
		return nil
	case keys.IsAction(msg, actionDown, scope):
		t.cursor = min(n-1, t.cursor+1)
		return nil
	}

	switch t.session.Phase() {
	case vote.Configuring:
		switch {
		case keys.IsAction(msg, actionVoteTopic, scope):
			t.editing = voteEditTopic
			t.input.Placeholder = "What are we voting on?"
			t.input.SetValue(t.session.Topic())
			return t.input.Focus()
		case keys.IsAction(msg, actionVoteEdit, scope), keys.IsAction(msg, actionVoteCast, scope):
			o, ok := t.current()
			if !ok {
				return nil
			}
			t.editing = voteEditOption
			t.input.Placeholder = fmt.Sprintf("Option %d", t.cursor+1)
			t.input.SetValue(o.Text)
			return t.input.Focus()
		case keys.IsAction(msg, actionVoteAdd, scope):
			if _, ok := t.session.AddOption(); !ok {
				m.SetStatus(fmt.Sprintf("A vote can have at most %d options", vote.MaxOptions))
				return nil
			}
			t.cursor = len(t.session.Options()) - 1
		case keys.IsAction(msg, actionVoteRemove, scope):
			o, ok := t.current()
			if !ok {
				return nil
			}
			if !t.session.RemoveOption(o.ID) {
				m.SetStatus(fmt.Sprintf("A vote needs at least %d options", vote.MinOptions))
				return nil
			}
			t.cursor = min(t.cursor, len(t.session.Options())-1)
		case keys.IsAction(msg, actionVoteStart, scope):
			if t.session.StartVote() {
				t.cursor = 0
				m.SetStatus("Voting has started")
				m.Log.Info("vote started", "topic", t.session.Topic(), "options", n)
			}
		}
		return nil
	default:
		switch {
		case keys.IsAction(msg, actionVoteCast, scope):
			return t.cast(m)
		case keys.IsAction(msg, actionVoteReveal, scope):
			return t.toggleResults(m)
		case keys.IsAction(msg, actionVoteReset, scope):
			return t.reset(m)
		case keys.IsAction(msg, actionVoteBack, scope):
			if t.session.EditVote() {
				m.SetStatus("Editing the vote")
				m.Log.Info("vote editing", "total", t.session.Total())
			}
		}
	}
	return nil
}

func (t *voteTab) handleMouse(m *Model, msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	row := msg.Y - voteOptionsTop
	if row < 0 || row >= len(t.session.Options()) {
		return nil
	}
	t.cursor = row
	if t.session.Phase() == vote.Collecting {
		return t.cast(m)
	}
	return nil
}

func (t *voteTab) cast(m *Model) tea.Cmd {
	o, ok := t.current()
	if !ok {
		return nil
	}
	if !t.session.Cast(o.ID) {
		if t.session.Phase() == vote.Revealed {
			m.SetStatus("Hide the results to keep voting")
		}
		return nil
	}
	m.SetStatus(fmt.Sprintf("Vote recorded (%s so far)", pluralVotes(t.session.Total())))
	m.Log.Debug("vote cast", "total", t.session.Total())
	return m.Cue(sound.VoteCast)
}

func (t *voteTab) toggleResults(m *Model) tea.Cmd {
	if !t.session.ToggleResults() {
		return nil
	}
	if t.session.Phase() == vote.Collecting {
		m.SetStatus("Results hidden")
		return nil
	}
	m.SetStatus("Results are in!")
	m.Log.Info("vote revealed", "total", t.session.Total())
	return tea.Batch(
		m.Cue(sound.VoteReveal),
		after(vote.CelebrationWindow, celebrationDoneMsg{token: t.session.CelebrationToken()}),
	)
}

func (t *voteTab) reset(m *Model) tea.Cmd {
	outcome, token := t.session.ResetVotes()
	switch outcome {
	case vote.ResetArmed:
		m.SetStatus(fmt.Sprintf("Press r again within %d seconds to clear every vote", int(vote.ResetWindow.Seconds())))
		return after(vote.ResetWindow, voteResetExpiredMsg{token: token})
	case vote.ResetCleared:
		m.SetStatus("All votes cleared")
		m.Log.Info("vote reset")
	}
	return nil
}

func pluralVotes(n int) string {
	if n == 1 {
		return "1 vote"
	}
	return humanize.Comma(int64(n)) + " votes"
}

func (t *voteTab) View(m *Model, width, height int) string {
	s := t.session
	topic := s.Topic()
	if strings.TrimSpace(topic) == "" {
		topic = mutedStyle.Render("(no topic yet)")
	} else {
		topic = accentStyle.Render(topic)
	}
	if t.editing == voteEditTopic {
		topic = t.input.View()
	}

	var phase string
	switch s.Phase() {
	case vote.Configuring:
		phase = mutedStyle.Render(fmt.Sprintf("Setting up · %d options", len(s.Options())))
	case vote.Collecting:
		phase = successStyle.Render("Voting open · " + pluralVotes(s.Total()) + " · results hidden")
	case vote.Revealed:
		phase = warnStyle.Render("Results · " + pluralVotes(s.Total()))
	}
	if s.ResetArmed() {
		phase += "  " + warnStyle.Render("press r again to clear")
	}

	lines := []string{topic, phase, ""}
	opts := s.Options()
	for i, o := range opts {
		lines = append(lines, t.optionLine(i, o, width))
		if i == t.cursor && t.editing == voteEditOption {
			lines = append(lines, "    "+t.input.View())
		}
	}
	if s.Phase() == vote.Revealed {
		lines = append(lines, "")
		if s.Celebrating() {
			lines = append(lines, celebrateText.Render("🎉 Results are in! 🎉"))
		}
		if leaders := s.Leaders(); len(leaders) > 0 {
			names := make([]string, 0, len(leaders))
			for _, l := range leaders {
				pos := slices.IndexFunc(opts, func(o vote.Option) bool { return o.ID == l.ID })
				names = append(names, vote.Label(l, pos))
			}
			lines = append(lines, starStyle.Render("🏆 "+strings.Join(names, ", ")))
		}
	}
	list := strings.Join(lines, "\n")

	content := list
	if s.Phase() == vote.Revealed && width > 70 {
		chart := barchart.New(max(10, width/3), max(5, height-4))
		chart.PushAll(voteBars(opts))
		chart.Draw()
		content = lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", chart.View())
	}
	return Pane{Title: "Vote", Content: content, Focused: t.Capturing()}.Render(width, height)
}

func (t *voteTab) optionLine(i int, o vote.Option, width int) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(o.Color)).Render("■")
	label := fmt.Sprintf("%2d. %s", i+1, vote.Label(o, i))
	if strings.TrimSpace(o.Text) == "" {
		label = mutedStyle.Render(label)
	}
	line := swatch + " " + label
	if t.session.Phase() == vote.Revealed {
		pct := t.session.Percent(o.Count)
		barW := max(4, min(30, width/4))
		fill := barW * pct / 100
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(o.Color)).Render(strings.Repeat("█", fill)) +
			mutedStyle.Render(strings.Repeat("░", barW-fill))
		line = padRight(line, 30) + " " + bar + fmt.Sprintf(" %3d%%  %d", pct, o.Count)
	}
	if i == t.cursor && t.editing == voteEditNone {
		return cursorStyle.Render("›") + " " + line
	}
	return "  " + line
}

func voteBars(opts []vote.Option) []barchart.BarData {
	out := make([]barchart.BarData, 0, len(opts))
	for i, o := range opts {
		out = append(out, barchart.BarData{
			Label: strconv.Itoa(i + 1),
			Values: []barchart.BarValue{{
				Name:  vote.Label(o, i),
				Value: float64(o.Count),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(o.Color)),
			}},
		})
	}
	return out
}
