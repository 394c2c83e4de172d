package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbox/config"
)

func TestErrorModalQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			_, cmd := NewErrorModal("Configuration Error", "bad").Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}

	_, cmd := NewErrorModal("Configuration Error", "bad").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
}

func TestErrorModalView(t *testing.T) {
	m := NewErrorModal("Configuration Error", "endpoint.url: unsupported scheme \"ftp\"")
	assert.Equal(t, "Configuration Error: endpoint.url: unsupported scheme \"ftp\"", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	view := stripANSI(next.View())

	assert.Contains(t, view, "Configuration Error")
	assert.Contains(t, view, "unsupported scheme")
	assert.Contains(t, view, "Press Enter or Esc to quit")
}

func TestModalWidth(t *testing.T) {
	assert.Equal(t, maxModalWidth, modalWidth(120))
	assert.Equal(t, 40, modalWidth(50))
}

func TestHelpModalListsBindings(t *testing.T) {
	a := newTestView(t, nil)
	view := stripANSI(a.renderHelpModal(testWidth, testHeight))

	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Alt+S")
	assert.Contains(t, view, "Click Send")
	assert.Contains(t, view, "Alt+Shift+G")
}

func TestHelpModalShowsDebugLog(t *testing.T) {
	t.Setenv("CHATBOX_CONFIG_DIR", "/tmp/chatbox")
	a := newTestView(t, nil)
	assert.NotContains(t, stripANSI(a.renderHelpModal(testWidth, testHeight)), "Debug:")

	config.Debug = true
	t.Cleanup(func() { config.Debug = false })

	view := stripANSI(a.renderHelpModal(testWidth, testHeight))
	assert.Contains(t, view, "Debug:")
	assert.Contains(t, view, "debug.log")
}
