package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := make([]string, 0, len(m.blocks)+2)
	sections = append(sections, m.header)
	sections = append(sections, m.blocks...)
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	names := m.resolver.Active().Names()
	tiers := make([]string, len(names))
	for i, name := range names {
		tiers[i] = string(name)
	}

	return strings.Join([]string{
		titleStyle.Render("stylekit preview"),
		mutedStyle.Render(fmt.Sprintf("width %d", m.resolver.Width())),
		tierStyle.Render(strings.Join(tiers, " ")),
	}, "  ")
}

func lineCount(s string) int {
	return lipgloss.Height(s)
}
