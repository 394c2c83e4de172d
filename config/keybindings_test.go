package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActionKeyDefaults(t *testing.T) {
	kb := DefaultKeybindings()

	tests := []struct {
		action string
		want   string
	}{
		{"send", "alt+s"},
		{"quit", "alt+q"},
		{"help", "alt+h"},
		{"half_page_down", "alt+J"},
		{"scroll_to_bottom", "alt+G"},
		{"page_down", "pgdown"},
		{"unknown_action", ""},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, kb.GetActionKey(tt.action))
		})
	}
}

func TestGetActionKeyCustomModifiers(t *testing.T) {
	kb := &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"}}

	assert.Equal(t, "ctrl+s", kb.GetActionKey("send"))
	assert.Equal(t, "ctrl+J", kb.GetActionKey("half_page_down"))
	assert.Equal(t, "Ctrl+Shift+J", kb.DisplayActionKey("half_page_down"))
}

func TestActionOverrides(t *testing.T) {
	kb := DefaultKeybindings()
	kb.Actions = map[string]string{"send": "ctrl+s", "quit": ""}

	assert.True(t, kb.Matches("send", "ctrl+s"))
	assert.False(t, kb.Matches("send", "alt+s"))
	// Empty override falls back to the default.
	assert.True(t, kb.Matches("quit", "alt+q"))
	assert.False(t, kb.Matches("unknown_action", ""))
}

func TestLoadKeybindingsFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "[modifiers]\nprimary = \"ctrl\"\n\n[actions]\nyank_last_reply = \"ctrl+y\"\n"
	require.NoError(t, os.WriteFile(GetKeybindingsFilePath(dir), []byte(content), 0600))

	kb, err := LoadKeybindings(dir)
	require.NoError(t, err)

	assert.Equal(t, "ctrl", kb.Primary())
	assert.Equal(t, "alt+shift", kb.Secondary())
	assert.Equal(t, "ctrl+y", kb.GetActionKey("yank_last_reply"))
	assert.Equal(t, "ctrl+q", kb.GetActionKey("quit"))
}

func TestValidateModifiers(t *testing.T) {
	ok, warning := DefaultKeybindings().Validate()
	assert.True(t, ok)
	assert.Empty(t, warning)

	ok, warning = (&KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"}}).Validate()
	assert.True(t, ok)
	assert.Contains(t, warning, "Ctrl")

	ok, _ = (&KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "shift", Secondary: "alt+shift"}}).Validate()
	assert.False(t, ok)
}
