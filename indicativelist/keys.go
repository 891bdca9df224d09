package indicativelist

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/extrabubbles/modkey"
)

// KeyMap holds the key bindings for moving the selection. Directions refer
// to the rendered list, so Up always targets the entry above the current
// one.
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
			key.WithHelp("↑", "previous entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next entry"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first entry"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last entry"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Home, k.End},
	}
}

func (k KeyMap) withModifier(mod modkey.Modifier) KeyMap {
	return KeyMap{
		Up:       mod.Rebind(k.Up),
		Down:     mod.Rebind(k.Down),
		PageUp:   mod.Rebind(k.PageUp),
		PageDown: mod.Rebind(k.PageDown),
		Home:     mod.Rebind(k.Home),
		End:      mod.Rebind(k.End),
	}
}
