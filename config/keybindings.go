package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	defaultPrimary   = "alt"
	defaultSecondary = "alt+shift"
)

// KeyBindingsConfig mirrors keybindings.toml: two modifier chords plus
// optional per-action overrides.
type KeyBindingsConfig struct {
	Modifiers ModifierConfig    `toml:"modifiers"`
	Actions   map[string]string `toml:"actions"`
}

type ModifierConfig struct {
	Primary   string `toml:"primary"`   // alt, ctrl, meta, super
	Secondary string `toml:"secondary"` // alt+shift, ctrl+shift
}

type modifierSlot int

const (
	noModifier modifierSlot = iota
	primarySlot
	secondarySlot
)

type binding struct {
	slot modifierSlot
	key  string
}

// Enter always submits while the input has focus; "send" is the extra chord.
var actionRegistry = map[string]binding{
	"send": {primarySlot, "s"},
	"help": {primarySlot, "h"},
	"quit": {primarySlot, "q"},

	"yank_last_reply": {primarySlot, "y"},
	"clear_input":     {primarySlot, "u"},

	"scroll_down":       {primarySlot, "j"},
	"scroll_up":         {primarySlot, "k"},
	"scroll_down_arrow": {primarySlot, "down"},
	"scroll_up_arrow":   {primarySlot, "up"},
	"half_page_down":    {secondarySlot, "j"},
	"half_page_up":      {secondarySlot, "k"},
	"page_down":         {noModifier, "pgdown"},
	"page_up":           {noModifier, "pgup"},
	"scroll_to_top":     {primarySlot, "g"},
	"scroll_to_bottom":  {secondarySlot, "g"},
}

func DefaultKeybindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Modifiers: ModifierConfig{
			Primary:   defaultPrimary,
			Secondary: defaultSecondary,
		},
	}
}

// LoadKeybindings reads keybindings.toml from dir, writing the template on
// first run. Missing modifiers fall back to the defaults.
func LoadKeybindings(dir string) (*KeyBindingsConfig, error) {
	kb := DefaultKeybindings()
	path := GetKeybindingsFilePath(dir)

	if !FileExists(path) {
		if err := CreateDefaultKeybindings(dir); err != nil {
			return nil, errors.Wrap(err, "failed to create keybindings")
		}
		return kb, nil
	}

	if _, err := toml.DecodeFile(path, kb); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	kb.Modifiers.Primary = kb.Primary()
	kb.Modifiers.Secondary = kb.Secondary()

	return kb, nil
}

func CreateDefaultKeybindings(dir string) error {
	if err := EnsureDir(dir); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	path := GetKeybindingsFilePath(dir)
	if FileExists(path) {
		return nil
	}

	if err := os.WriteFile(path, []byte(GenerateKeybindingsTemplate()), 0600); err != nil {
		return errors.Wrap(err, "failed to write keybindings")
	}

	return nil
}

func GenerateKeybindingsTemplate() string {
	return `# chatbox keybindings
# Location: ~/.config/chatbox/keybindings.toml
# This file uses TOML format: https://toml.io

# ==============================================================================
# MODIFIER KEYS
# ==============================================================================
# Change these to avoid conflicts with your window manager/terminal multiplexer

[modifiers]
primary = "alt"          # Default: alt (Options: alt, ctrl, meta, super)
secondary = "alt+shift"  # Default: alt+shift

# For tmux users (Alt may conflict):
#   primary = "ctrl"
#   secondary = "ctrl+shift"

# ==============================================================================
# PER-ACTION OVERRIDES
# ==============================================================================
# Enter always sends while the input has focus. Available actions:
#   send, help, quit, yank_last_reply, clear_input,
#   scroll_down, scroll_up, scroll_down_arrow, scroll_up_arrow,
#   half_page_down, half_page_up, page_down, page_up,
#   scroll_to_top, scroll_to_bottom

[actions]
# Examples (uncomment to use):
#   send = "ctrl+s"
#   quit = "ctrl+shift+q"
#   scroll_down = "ctrl+n"
#   scroll_up = "ctrl+p"
`
}

func (kb *KeyBindingsConfig) Primary() string {
	if kb.Modifiers.Primary == "" {
		return defaultPrimary
	}
	return kb.Modifiers.Primary
}

func (kb *KeyBindingsConfig) Secondary() string {
	if kb.Modifiers.Secondary == "" {
		return defaultSecondary
	}
	return kb.Modifiers.Secondary
}

// chord joins a modifier and a key the way tea.KeyMsg.String spells them.
// Terminals report shift+letter as the upper-case letter, so a shift in the
// modifier is folded into the key for single letters ("alt+shift", "j"
// becomes "alt+J").
func chord(modifier, key string) string {
	if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
		return modifier + "+" + key
	}

	var mods []string
	shifted := false
	for _, part := range strings.Split(modifier, "+") {
		if strings.EqualFold(part, "shift") {
			shifted = true
			continue
		}
		mods = append(mods, part)
	}
	if !shifted {
		return modifier + "+" + key
	}

	key = strings.ToUpper(key)
	if len(mods) == 0 {
		return key
	}
	return strings.Join(mods, "+") + "+" + key
}

// GetActionKey resolves an action to its key string: a non-empty override
// wins, then the registry default. Unknown actions resolve to "".
func (kb *KeyBindingsConfig) GetActionKey(action string) string {
	if override := kb.Actions[action]; override != "" {
		return override
	}

	b, ok := actionRegistry[action]
	if !ok {
		return ""
	}
	switch b.slot {
	case primarySlot:
		return chord(kb.Primary(), b.key)
	case secondarySlot:
		return chord(kb.Secondary(), b.key)
	default:
		return b.key
	}
}

// Matches reports whether key (as produced by tea.KeyMsg.String) triggers action.
func (kb *KeyBindingsConfig) Matches(action, key string) bool {
	bound := kb.GetActionKey(action)
	return bound != "" && bound == key
}

// DisplayActionKey renders an action's key for the help and status bar,
// e.g. "alt+J" as "Alt+Shift+J".
func (kb *KeyBindingsConfig) DisplayActionKey(action string) string {
	return displayChord(kb.GetActionKey(action))
}

func displayChord(key string) string {
	if key == "" {
		return ""
	}

	parts := strings.Split(key, "+")
	hasShift := false
	for _, p := range parts {
		if strings.EqualFold(p, "shift") {
			hasShift = true
		}
	}

	out := make([]string, 0, len(parts)+1)
	for i, p := range parts {
		if p == "" {
			continue
		}
		if len(p) == 1 && p[0] >= 'A' && p[0] <= 'Z' && i > 0 && !hasShift {
			out = append(out, "Shift")
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, "+")
}

// Validate rejects modifiers that would swallow ordinary typing. The second
// value is a warning worth surfacing even when the config is accepted.
func (kb *KeyBindingsConfig) Validate() (bool, string) {
	primary, secondary := kb.Primary(), kb.Secondary()

	if strings.EqualFold(primary, "shift") || strings.EqualFold(secondary, "shift") {
		return false, "shift alone as a modifier conflicts with typing"
	}
	if strings.Contains(primary, "ctrl") || strings.Contains(secondary, "ctrl") {
		return true, "Ctrl may conflict with terminal shortcuts (Ctrl+C, Ctrl+Z, Ctrl+D)"
	}

	return true, ""
}
