package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	successColor = lipgloss.Color("10")
	warningColor = lipgloss.Color("11")
	dangerColor  = lipgloss.Color("9")

	// User message style
	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)
	// NO .Background() = transparent!

	// Bot message style
	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// Failed exchange notice in the message list
	FailedStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// System/timestamp style
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	// Status bar style
	StatusStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	SendButtonStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Send button while replies are pending; it stays clickable
	SendButtonBusyStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)
)

// FormatFooter formats a footer string with alternating keys and descriptions.
// Keys remain default color, descriptions are rendered in user green+bold.
// Usage: FormatFooter("Enter", "Send", "Alt+Q", "Quit")
func FormatFooter(parts ...string) string {
	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	var result []string
	for i := 0; i < len(parts); i += 2 {
		if i+1 < len(parts) {
			result = append(result, parts[i]+" "+descStyle.Render(parts[i+1]))
		}
	}
	return strings.Join(result, "  ")
}
