package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Background(colorMantle).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	clockStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	starStyle     = lipgloss.NewStyle().Foreground(colorStar).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorAccent).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	bigTextStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	celebrateText = lipgloss.NewStyle().Foreground(colorWarn).Bold(true).Blink(true)
)
