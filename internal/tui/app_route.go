package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// bodyTop is the number of rows above the tab body: title bar, tab strip
// and status bar.
const (
	tabStripRow = 1
	bodyTop     = 3
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, clockTick()
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case TabSwitchMsg:
		m.SwitchTab(msg.Index)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		tab := m.ActiveTab()
		if tab == nil {
			return m, nil
		}
		scope := m.ActiveScope()
		if scope == scopeInput {
			return m, tab.Update(&m, msg)
		}
		if m.keys.IsAction(msg, actionQuit, scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, actionNextTab, scope) {
			m.SwitchTab((m.activeTab + 1) % len(m.tabs))
			return m, nil
		}
		if m.keys.IsAction(msg, actionPrevTab, scope) {
			m.SwitchTab((m.activeTab - 1 + len(m.tabs)) % len(m.tabs))
			return m, nil
		}
		for i := range m.tabs {
			if m.keys.IsAction(msg, switchTabAction(i), scope) {
				m.SwitchTab(i)
				return m, nil
			}
		}
		return m, tab.Update(&m, msg)
	case tea.MouseMsg:
		tab := m.ActiveTab()
		if tab == nil {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Y == tabStripRow {
			if i := m.tabAt(msg.X); i >= 0 {
				m.SwitchTab(i)
				return m, nil
			}
		}
		msg.Y -= bodyTop
		return m, tab.Update(&m, msg)
	}

	// Timer and blink messages go to every tab; each ignores what it did not
	// schedule.
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if cmd := t.Update(&m, msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}
