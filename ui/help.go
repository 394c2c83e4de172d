package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"chatbox/config"
)

type shortcut struct {
	key  string
	desc string
}

func actionShortcuts(kb *config.KeyBindingsConfig, rows ...[2]string) []shortcut {
	out := make([]shortcut, 0, len(rows))
	for _, r := range rows {
		out = append(out, shortcut{key: kb.DisplayActionKey(r[0]), desc: r[1]})
	}
	return out
}

func shortcutColumn(heading string, rows []shortcut) string {
	lines := []string{lipgloss.NewStyle().Foreground(accentColor).Render("## " + heading)}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("• %-13s %s", r.key, r.desc))
	}
	return lipgloss.NewStyle().Width(34).PaddingLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.cfg.Keybindings

	chat := append([]shortcut{
		{"Enter", "Send message"},
		{"Click Send", "Send message"},
	}, actionShortcuts(kb,
		[2]string{"send", "Send message"},
		[2]string{"clear_input", "Clear input"},
		[2]string{"yank_last_reply", "Copy last reply"},
		[2]string{"help", "Toggle this help"},
		[2]string{"quit", "Quit"},
	)...)

	nav := append(actionShortcuts(kb,
		[2]string{"scroll_down", "Scroll down 1 line"},
		[2]string{"scroll_up", "Scroll up 1 line"},
		[2]string{"half_page_down", "Half page down"},
		[2]string{"half_page_up", "Half page up"},
		[2]string{"page_down", "Full page down"},
		[2]string{"page_up", "Full page up"},
		[2]string{"scroll_to_top", "Jump to top"},
		[2]string{"scroll_to_bottom", "Jump to bottom"},
	), shortcut{"Mouse wheel", "Scroll"})

	label := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	aboutLines := []string{
		lipgloss.NewStyle().Foreground(accentColor).Render("## About"),
		label.Render("Endpoint: ") + a.cfg.EndpointURL(),
		label.Render("Config:   ") + a.cfg.Dir(),
		label.Render("Version:  ") + a.version,
		label.Render("License:  ") + a.license,
	}
	if config.Debug {
		aboutLines = append(aboutLines, label.Render("Debug:    ")+config.DebugLogPath(a.cfg.Dir()))
	}
	about := lipgloss.JoinVertical(lipgloss.Left, aboutLines...)

	title := lipgloss.NewStyle().Bold(true).Foreground(successColor).
		Render(a.cfg.Widget.Title + " - Keyboard Shortcuts")
	footer := DimStyle.Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, shortcutColumn("Chat Actions", chat), "    ", shortcutColumn("Chat Navigation", nav)),
		"",
		about,
		"",
		footer,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		MaxWidth(width)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(content))
}
