package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jyj1227/class-board/internal/reveal"
	"github.com/jyj1227/class-board/internal/roster"
	"github.com/jyj1227/class-board/internal/sound"
)

type pickerTab struct {
	picker *reveal.Picker
}

func newPickerTab(rng reveal.Rand) *pickerTab {
	return &pickerTab{picker: reveal.NewPicker(rng)}
}

func (t *pickerTab) ID() string    { return "picker" }
func (t *pickerTab) Title() string { return "Picker" }
func (t *pickerTab) Scope() string { return scopePicker }

func candidates(r *roster.Roster) []reveal.Candidate {
	students := r.Students()
	out := make([]reveal.Candidate, 0, len(students))
	for _, p := range students {
		out = append(out, reveal.Candidate{ID: p.ID, Name: participantLabel(p)})
	}
	return out
}

func (t *pickerTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pickerTickMsg:
		step, ok := t.picker.Tick(msg.token)
		if !ok {
			return nil
		}
		if !step.Done {
			return after(reveal.PickerInterval, pickerTickMsg{token: msg.token})
		}
		m.SetStatus(step.Winner.Name + " was picked!")
		m.Log.Info("picker finished", "winner", step.Winner.ID)
		return m.Cue(sound.PickerDone)
	case tea.KeyMsg:
		if m.keys.IsAction(msg, actionPickerStart, t.Scope()) {
			return t.start(m)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return t.start(m)
		}
	}
	return nil
}

func (t *pickerTab) start(m *Model) tea.Cmd {
	token, ok := t.picker.Start(candidates(m.Roster))
	if !ok {
		return nil
	}
	m.SetStatus("Picking...")
	return after(reveal.PickerInterval, pickerTickMsg{token: token})
}

func (t *pickerTab) View(m *Model, width, height int) string {
	name := "?"
	if c, ok := t.picker.Shown(); ok {
		name = c.Name
	}
	style := bigTextStyle
	caption := "space or click to pick"
	switch {
	case t.picker.Picking():
		style = style.BorderForeground(colorWarn)
		caption = "Picking..."
	case name != "?":
		style = style.BorderForeground(colorSuccess)
		caption = "Congratulations!"
	}
	main := lipgloss.JoinVertical(lipgloss.Center, style.Render(name), "", accentStyle.Render(caption))

	history := t.picker.History()
	lines := []string{mutedStyle.Render("Recent picks")}
	if len(history) == 0 {
		lines = append(lines, mutedStyle.Render("none yet"))
	}
	for i, c := range history {
		lines = append(lines, fmt.Sprintf("%-5s %s", humanize.Ordinal(i+1), c.Name))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.Place(max(1, width-30), max(1, height-4), lipgloss.Center, lipgloss.Center, main),
		strings.Join(lines, "\n"))
	return Pane{Title: "Random picker", Content: content}.Render(width, height)
}
