package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	var body string
	if t := m.ActiveTab(); t != nil && bodyHeight > 0 {
		body = t.View(&m, max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.Join([]string{header, status, body}, "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+bodyHeight)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func tabLabel(i int, title string) string {
	return fmt.Sprintf("%d:%s", (i+1)%10, title)
}

// tabAt maps a column of the tab strip to a tab index, or -1.
func (m Model) tabAt(x int) int {
	pos := 0
	for i, t := range m.tabs {
		w := ansi.StringWidth(inactiveTabStyle.Render(tabLabel(i, t.Title())))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

// renderHeader draws the title bar with the clock and the tab strip below it.
func renderHeader(m Model) string {
	width := max(1, m.width)
	left := headerAppStyle.Render(" " + m.title + " ")
	right := clockStyle.Render(" " + m.clock.Format(m.clockFormat) + " ")
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	title := renderHeaderBar(headerBarStyle, width, left+strings.Repeat(" ", gap)+right)

	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := tabLabel(i, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	strip := renderHeaderBar(tabSepStyle, width, strings.Join(tabs, ""))
	return title + "\n" + strip
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
