package selectablerow

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/extrabubbles/indicativelist"
)

// RowSelectedMsg reports that the selected row of a list was activated.
type RowSelectedMsg struct {
	Index int
	Row   Model
}

// Delegate renders selectablerow entries inside an indicativelist and
// turns the activation key into a RowSelectedMsg for the selected row.
// Entries that are not rows fall back to their plain label.
type Delegate struct {
	// Styles supplies the off-focus highlight for the selected row.
	Styles indicativelist.DefaultItemStyles

	// SelectKey activates the selected row.
	SelectKey key.Binding
}

// NewDelegate returns a delegate with the default styles and activation
// binding.
func NewDelegate() Delegate {
	return Delegate{
		Styles:    indicativelist.NewDefaultItemStyles(),
		SelectKey: DefaultKeyMap().Select,
	}
}

// Height implements indicativelist.ItemDelegate.
func (d Delegate) Height() int { return 1 }

// Spacing implements indicativelist.ItemDelegate.
func (d Delegate) Spacing() int { return 0 }

// Update implements indicativelist.ItemDelegate.
func (d Delegate) Update(msg tea.Msg, m *indicativelist.Model) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, d.SelectKey) {
		return nil
	}
	item, ok := m.SelectedItem()
	if !ok {
		return nil
	}
	row, ok := item.(Model)
	if !ok {
		return nil
	}
	index := m.SelectedIndex()
	return func() tea.Msg {
		return RowSelectedMsg{Index: index, Row: row}
	}
}

// Render implements indicativelist.ItemDelegate.
func (d Delegate) Render(w io.Writer, m indicativelist.Model, index int, item indicativelist.Item) {
	row, ok := item.(Model)
	if !ok {
		indicativelist.DefaultDelegate{Styles: d.Styles}.Render(w, m, index, item)
		return
	}

	row.SetWidth(m.Width())
	switch {
	case index == m.SelectedIndex() && m.Focused():
		row.Focus()
	case index == m.SelectedIndex():
		row.Blur()
		row.BlurredStyle = d.Styles.BlurredSelected
	default:
		row.Blur()
	}
	io.WriteString(w, row.View())
}
