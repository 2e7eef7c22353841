package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/peanut-runner/internal/config"
	"github.com/vovakirdan/peanut-runner/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Jump      key.Binding
	SuperJump key.Binding
	Replay    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds bindings from config. SuperJump is disabled unless the
// variant has the strong jump, which also hides it from help.
func NewKeyMap(keys config.KeysConfig, v core.Variant) KeyMap {
	km := KeyMap{
		Left:      binding(keys.Left, "left"),
		Right:     binding(keys.Right, "right"),
		Jump:      binding(keys.Jump, "jump"),
		SuperJump: binding(keys.SuperJump, "super jump"),
		Replay:    binding(keys.Replay, "play again"),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
			key.WithDisabled(),
		),
		Quit: binding(keys.Quit, "quit"),
	}
	km.SuperJump.SetEnabled(v.StrongJump)
	return km
}

// binding creates a key binding whose help lists every key.
func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keyName(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// keyName returns the printable name of a key string.
func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.SuperJump, k.Replay, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.SuperJump},
		{k.Replay, k.Back, k.Quit},
	}
}

// GameKey translates a key message into the game key it presses.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Jump):
		return core.KeyUp, true
	case key.Matches(msg, k.SuperJump):
		return core.KeySpace, true
	}
	return "", false
}

// MenuKeyMap defines the key bindings for the variant menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
