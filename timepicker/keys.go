package timepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings that move the focus between the columns. The
// movement keys of the individual pickers live in their own keymaps; a
// modifier set with WithModifier applies to those, not to the column
// bindings here.
type KeyMap struct {
	NextPicker key.Binding
	PrevPicker key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextPicker: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→/tab", "next picker"),
		),
		PrevPicker: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/shift+tab", "previous picker"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPicker, k.NextPicker}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevPicker, k.NextPicker}}
}
