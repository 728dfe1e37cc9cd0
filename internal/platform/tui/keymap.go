package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// KeyMap holds the terminal key bindings. Bindings come from the config so
// they can be remapped without code changes.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Throw      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding

	move key.Binding // Help entry for the four movement bindings
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	var moveKeys, firsts []string
	for _, keys := range [][]string{cfg.Up, cfg.Down, cfg.Left, cfg.Right} {
		moveKeys = append(moveKeys, keys...)
		if len(keys) > 0 {
			firsts = append(firsts, keyLabel(keys[0]))
		}
	}

	return KeyMap{
		Up:         binding(cfg.Up, "up"),
		Down:       binding(cfg.Down, "down"),
		Left:       binding(cfg.Left, "left"),
		Right:      binding(cfg.Right, "right"),
		Throw:      binding(cfg.Throw, "throw"),
		Confirm:    binding(cfg.Confirm, "begin/restart"),
		Back:       binding(cfg.Back, "back"),
		Quit:       binding(cfg.Quit, "quit"),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		move:       key.NewBinding(key.WithKeys(moveKeys...), key.WithHelp(strings.Join(firsts, "/"), "move")),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, keyLabel(k))
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(labels, "/"), desc))
}

// keyLabel returns the help label of a key name.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// Lookup translates a key message to a game key.
// Returns core.KeyNone for unbound keys and for quit.
func (km KeyMap) Lookup(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, km.Up):
		return core.KeyUp
	case key.Matches(msg, km.Down):
		return core.KeyDown
	case key.Matches(msg, km.Left):
		return core.KeyLeft
	case key.Matches(msg, km.Right):
		return core.KeyRight
	case key.Matches(msg, km.Throw):
		return core.KeyThrow
	case key.Matches(msg, km.Confirm):
		return core.KeyConfirm
	case key.Matches(msg, km.Back):
		return core.KeyBack
	}
	return core.KeyNone
}

// IsQuit reports whether msg is bound to quit.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.Quit)
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.move, km.Throw, km.Confirm, km.Back, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Throw, km.Confirm, km.Back},
		{km.Screenshot, km.Quit},
	}
}
