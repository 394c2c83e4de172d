package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxModalWidth = 60

// modalWidth fits a modal into a terminal of the given width with a margin
// of five cells on each side.
func modalWidth(termWidth int) int {
	return min(maxModalWidth, termWidth-10)
}

// modalFrame stacks a title, a body and a footer, separated by thin rules,
// and centres the result on a width x height canvas.
func modalFrame(title, body, footer string, width, height int) string {
	w := modalWidth(width)
	rule := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor)

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(dangerColor).
		Align(lipgloss.Center).
		Width(w).
		Render(title)

	pad := strings.Repeat(" ", w)
	text := lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(body)
	middle := rule.Render(pad + "\n" + text + "\n" + pad)

	foot := rule.
		Foreground(dimColor).
		Align(lipgloss.Center).
		Width(w).
		Render(footer)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, head, middle, foot))
}
