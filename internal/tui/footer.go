package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// bindingHelp adapts scoped bindings to the bubbles help model.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding  { return b }
func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func RenderFooter(m Model) string {
	scope := m.ActiveScope()
	bindings := m.keys.BindingsForScope(scope)
	bg := colorMantle

	// scope-specific hints first, then the globals
	hints := make(bindingHelp, 0, len(bindings))
	var globals bindingHelp
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
		if slices.Contains(b.Scopes, "*") {
			globals = append(globals, kb)
			continue
		}
		hints = append(hints, kb)
	}
	if scope == scopeInput {
		globals = nil
	}
	hints = append(hints, globals...)

	h := help.New()
	h.Width = max(1, m.width)
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Background(bg)
	h.Styles.Ellipsis = lipgloss.NewStyle().Foreground(colorMuted).Background(bg)

	line := h.View(hints)
	if len(hints) == 0 {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
