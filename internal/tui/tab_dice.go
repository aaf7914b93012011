package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jyj1227/class-board/internal/reveal"
	"github.com/jyj1227/class-board/internal/sound"
)

var diceFaces = [...][3]string{
	{"       ", "   ●   ", "       "},
	{" ●     ", "       ", "     ● "},
	{" ●     ", "   ●   ", "     ● "},
	{" ●   ● ", "       ", " ●   ● "},
	{" ●   ● ", "   ●   ", " ●   ● "},
	{" ●   ● ", " ●   ● ", " ●   ● "},
}

type diceTab struct {
	dice *reveal.Dice
}

func newDiceTab(rng reveal.Rand) *diceTab {
	return &diceTab{dice: reveal.NewDice(rng)}
}

func (t *diceTab) ID() string    { return "dice" }
func (t *diceTab) Title() string { return "Dice" }
func (t *diceTab) Scope() string { return scopeDice }

func (t *diceTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case diceSpinMsg:
		if t.dice.Spin(msg.token) {
			return after(reveal.DiceSpinInterval, diceSpinMsg{token: msg.token})
		}
	case diceSettleMsg:
		face, ok := t.dice.Settle(msg.token)
		if !ok {
			return nil
		}
		m.SetStatus(fmt.Sprintf("Rolled a %d", face))
		m.Log.Info("dice settled", "face", face)
		return m.Cue(sound.DiceSettle)
	case tea.KeyMsg:
		if m.keys.IsAction(msg, actionDiceRoll, t.Scope()) {
			return t.roll(m)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return t.roll(m)
		}
	}
	return nil
}

func (t *diceTab) roll(m *Model) tea.Cmd {
	token, ok := t.dice.Roll()
	if !ok {
		return nil
	}
	m.SetStatus("Rolling...")
	return tea.Batch(
		m.Cue(sound.DiceRoll),
		after(reveal.DiceSpinInterval, diceSpinMsg{token: token}),
		after(reveal.DiceSettleDelay, diceSettleMsg{token: token}),
	)
}

func (t *diceTab) View(m *Model, width, height int) string {
	face := t.dice.Face()
	border := colorAccent
	caption := fmt.Sprintf("You rolled %d", face)
	if t.dice.Rolling() {
		border = colorWarn
		caption = "Rolling..."
	}
	rows := diceFaces[(face-1+reveal.DiceFaces)%reveal.DiceFaces]
	die := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Bold(true).
		Render(strings.Join(rows[:], "\n"))
	content := lipgloss.Place(max(1, width-4), max(1, height-4), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, die, "", accentStyle.Render(caption), mutedStyle.Render("space or click to roll")))
	return Pane{Title: "Dice", Content: content}.Render(width, height)
}
