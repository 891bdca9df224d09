// Package modkey expresses key-modifier combinations in Bubble Tea key
// syntax. Widgets that normally react to plain navigation keys can be
// rebound so they only react to modified input ("up" becomes "ctrl+up"),
// which leaves the unmodified keys free for moving focus between widgets
// in a larger form.
//
// Not every combination is available on every terminal; plain Alt and
// Ctrl are the portable choices.
package modkey

import "github.com/charmbracelet/bubbles/key"

// Modifier identifies a modifier key combination.
type Modifier int

const (
	// None leaves key names untouched.
	None Modifier = iota
	Shift
	Alt
	Ctrl
	ShiftAlt
	ShiftCtrl
	AltCtrl
	ShiftAltCtrl
)

// String returns the Bubble Tea prefix for the modifier, without a
// trailing separator. None yields the empty string.
func (m Modifier) String() string {
	switch m {
	case Shift:
		return "shift"
	case Alt:
		return "alt"
	case Ctrl:
		return "ctrl"
	case ShiftAlt:
		// Bubble Tea reports alt before the remaining modifiers.
		return "alt+shift"
	case ShiftCtrl:
		return "ctrl+shift"
	case AltCtrl:
		return "alt+ctrl"
	case ShiftAltCtrl:
		return "alt+ctrl+shift"
	default:
		return ""
	}
}

// Prepend prefixes a key name with the modifier, yielding the name Bubble
// Tea reports for the modified press. None returns the name unchanged.
func (m Modifier) Prepend(name string) string {
	prefix := m.String()
	if prefix == "" {
		return name
	}
	return prefix + "+" + name
}

// PrependAll applies Prepend to every name.
func (m Modifier) PrependAll(names ...string) []string {
	if m == None {
		return names
	}
	modified := make([]string, len(names))
	for i, name := range names {
		modified[i] = m.Prepend(name)
	}
	return modified
}

// Rebind returns a copy of the binding with every key prefixed by the
// modifier and the help key text updated to match. The original binding
// is left untouched.
func (m Modifier) Rebind(b key.Binding) key.Binding {
	if m == None {
		return b
	}
	help := b.Help()
	return key.NewBinding(
		key.WithKeys(m.PrependAll(b.Keys()...)...),
		key.WithHelp(m.Prepend(help.Key), help.Desc),
	)
}
