package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jyj1227/class-board/internal/roster"
	"github.com/jyj1227/class-board/internal/vote"
)

var emotionColors = map[roster.Emotion]lipgloss.Color{
	roster.Happy:  "#f9e2af",
	roster.Love:   "#f5c2e7",
	roster.Sad:    "#89b4fa",
	roster.Angry:  "#f38ba8",
	roster.Sleepy: "#cba6f7",
}

type statsTab struct{}

func newStatsTab() *statsTab { return &statsTab{} }

func (t *statsTab) ID() string                           { return "stats" }
func (t *statsTab) Title() string                        { return "Stats" }
func (t *statsTab) Scope() string                        { return scopeStats }
func (t *statsTab) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }

func (t *statsTab) View(m *Model, width, height int) string {
	counts, active := m.Roster.Tally()

	lines := []string{
		accentStyle.Render(fmt.Sprintf("%d of %d participants are sharing a mood", active, m.Roster.Len())),
		"",
	}
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("%s %-7s %3d  %3d%%",
			c.Emotion.Symbol(), c.Emotion, c.Count, vote.Percent(c.Count, active)))
	}
	lines = append(lines, "", starStyle.Render(fmt.Sprintf("★ %d", m.Roster.Stars())))
	summary := strings.Join(lines, "\n")

	chartW := max(10, width-lipgloss.Width(summary)-8)
	chartH := max(4, height-4)
	chart := barchart.New(chartW, chartH)
	chart.PushAll(emotionBars(counts))
	chart.Draw()

	content := lipgloss.JoinHorizontal(lipgloss.Top, summary, "    ", chart.View())
	return Pane{Title: "Statistics", Content: content}.Render(width, height)
}

func emotionBars(counts []roster.EmotionCount) []barchart.BarData {
	out := make([]barchart.BarData, 0, len(counts))
	for _, c := range counts {
		out = append(out, barchart.BarData{
			Label: c.Emotion.Symbol(),
			Values: []barchart.BarValue{{
				Name:  c.Emotion.String(),
				Value: float64(c.Count),
				Style: lipgloss.NewStyle().Foreground(emotionColors[c.Emotion]),
			}},
		})
	}
	return out
}
