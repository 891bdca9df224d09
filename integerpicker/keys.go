package integerpicker

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/extrabubbles/modkey"
)

// KeyMap defines the key bindings for the widget. The bindings are
// directional: Up moves toward the value shown at the top of the display,
// which is the minimum while values ascend downward (the default) and the
// maximum otherwise.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "step up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "step down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "jump up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "jump down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first value"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last value"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Home, k.End},
	}
}

// withModifier rebinds every binding to require the modifier.
func (k KeyMap) withModifier(mod modkey.Modifier) KeyMap {
	k.Up = mod.Rebind(k.Up)
	k.Down = mod.Rebind(k.Down)
	k.PageUp = mod.Rebind(k.PageUp)
	k.PageDown = mod.Rebind(k.PageDown)
	k.Home = mod.Rebind(k.Home)
	k.End = mod.Rebind(k.End)
	return k
}
