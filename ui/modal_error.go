package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ErrorModal reports an error that keeps the chat view from starting (bad
// settings, unusable config directory). It runs as its own tea.Program.
type ErrorModal struct {
	title   string
	message string
	width   int
	height  int
}

func NewErrorModal(title, message string) ErrorModal {
	return ErrorModal{title: title, message: message}
}

func (m ErrorModal) Init() tea.Cmd {
	return nil
}

func (m ErrorModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ErrorModal) View() string {
	if m.width < 20 || m.height < 10 {
		return m.title + ": " + m.message
	}
	return modalFrame(m.title, m.message, "Press Enter or Esc to quit", m.width, m.height)
}
