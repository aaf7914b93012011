package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jyj1227/class-board/internal/confirm"
	"github.com/jyj1227/class-board/internal/reveal"
	"github.com/jyj1227/class-board/internal/wordcloud"
)

const rankingWidth = 24

type wordCloudTab struct {
	cloud   *wordcloud.Cloud
	input   textinput.Model
	editing bool
}

func newWordCloudTab(rng reveal.Rand) *wordCloudTab {
	return &wordCloudTab{
		cloud: wordcloud.New(rng),
		input: newInput("> ", "Type a word", 40),
	}
}

func (t *wordCloudTab) ID() string      { return "wordcloud" }
func (t *wordCloudTab) Title() string   { return "Words" }
func (t *wordCloudTab) Scope() string   { return scopeWordCloud }
func (t *wordCloudTab) Capturing() bool { return t.editing }

func (t *wordCloudTab) Deactivate(m *Model) {
	t.editing = false
	t.input.Blur()
}

func (t *wordCloudTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wordClearExpiredMsg:
		if t.cloud.ExpireClear(msg.token) {
			m.SetStatus("Clear cancelled")
		}
		return nil
	case tea.KeyMsg:
		if t.editing {
			submit, cancel, cmd := editInput(m, &t.input, msg)
			switch {
			case submit:
				// stay in the field so the class can keep adding words
				if w, ok := t.cloud.Add(t.input.Value()); ok {
					m.SetStatus(fmt.Sprintf("%q ×%d", w.Text, w.Count))
				}
				t.input.Reset()
			case cancel:
				t.editing = false
				t.input.Blur()
			}
			return cmd
		}
		keys, scope := m.keys, t.Scope()
		switch {
		case keys.IsAction(msg, actionWordAdd, scope):
			t.editing = true
			return t.input.Focus()
		case keys.IsAction(msg, actionWordShuffle, scope):
			t.cloud.Shuffle()
			m.SetStatus("Shuffled")
		case keys.IsAction(msg, actionWordClear, scope):
			cleared, token := t.cloud.Clear()
			if cleared {
				m.SetStatus("Word cloud cleared")
				m.Log.Info("word cloud cleared")
				return nil
			}
			m.SetStatus(fmt.Sprintf("Press again within %d seconds to clear every word", int(confirm.DefaultWindow.Seconds())))
			return after(confirm.DefaultWindow, wordClearExpiredMsg{token: token})
		}
		return nil
	}
	if t.editing {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return cmd
	}
	return nil
}

func wordStyle(w wordcloud.Word) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(w.Color))
	switch {
	case w.Size >= 120:
		st = st.Bold(true).Underline(true).Padding(0, 2)
	case w.Size >= 90:
		st = st.Bold(true).Padding(0, 1)
	case w.Size >= 60:
		st = st.Bold(true)
	}
	if w.Rotation != 0 {
		st = st.Italic(true)
	}
	return st
}

// flow lays words out left to right, wrapping at width.
func flow(words []wordcloud.Word, width int) string {
	var lines []string
	var line []string
	lineW := 0
	for _, w := range words {
		text := w.Text
		if w.Size >= 120 {
			text = strings.ToUpper(text)
		}
		cell := wordStyle(w).Render(text)
		cw := ansi.StringWidth(cell)
		if lineW > 0 && lineW+1+cw > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineW = nil, 0
		}
		if lineW > 0 {
			lineW++
		}
		line = append(line, cell)
		lineW += cw
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n\n")
}

func (t *wordCloudTab) View(m *Model, width, height int) string {
	cloudW := max(10, width-rankingWidth-6)
	var cloud string
	if t.cloud.Len() == 0 {
		cloud = mutedStyle.Render("No words yet. Press a to add one.")
	} else {
		cloud = flow(t.cloud.Words(), cloudW)
	}
	if t.editing {
		cloud = t.input.View() + "\n\n" + cloud
	}
	if t.cloud.ClearArmed() {
		cloud = warnStyle.Render("Press clear again to remove every word") + "\n\n" + cloud
	}

	ranking := []string{mutedStyle.Render("Top words")}
	for i, w := range t.cloud.Ranked() {
		if i == 5 {
			break
		}
		ranking = append(ranking, fmt.Sprintf("%d. %s ×%d", i+1, ansi.Truncate(w.Text, rankingWidth-8, "…"), w.Count))
	}

	left := Pane{Title: "Word cloud", Content: cloud, Focused: t.editing}.Render(max(4, width-rankingWidth-2), height)
	right := Pane{Title: "Ranking", Content: strings.Join(ranking, "\n")}.Render(rankingWidth+2, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
