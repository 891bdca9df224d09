package indicativelist

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ItemDelegate renders the entries of the list and may react to messages.
// Render is called once per visible entry.
type ItemDelegate interface {
	// Render writes the entry at the given index to w, without a trailing
	// newline.
	Render(w io.Writer, m Model, index int, item Item)

	// Height returns the number of rows a single entry occupies.
	Height() int

	// Spacing returns the number of blank rows between entries.
	Spacing() int

	// Update is called for messages the list itself does not consume,
	// allowing the delegate to react to activation keys and the like.
	Update(msg tea.Msg, m *Model) tea.Cmd
}

// DefaultItemStyles holds the styles used by DefaultDelegate. The selected
// entry keeps a muted highlight while the list lacks focus, so the
// selection stays recognizable in multi-widget layouts.
type DefaultItemStyles struct {
	Normal          lipgloss.Style
	Selected        lipgloss.Style
	BlurredSelected lipgloss.Style
}

// NewDefaultItemStyles returns the default entry styles.
func NewDefaultItemStyles() DefaultItemStyles {
	return DefaultItemStyles{
		Normal:          lipgloss.NewStyle(),
		Selected:        lipgloss.NewStyle().Reverse(true),
		BlurredSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("245")),
	}
}

// DefaultDelegate renders each entry's label on a single row.
type DefaultDelegate struct {
	Styles DefaultItemStyles
}

// NewDefaultDelegate returns a delegate with the default styles.
func NewDefaultDelegate() DefaultDelegate {
	return DefaultDelegate{Styles: NewDefaultItemStyles()}
}

// Height implements ItemDelegate.
func (d DefaultDelegate) Height() int { return 1 }

// Spacing implements ItemDelegate.
func (d DefaultDelegate) Spacing() int { return 0 }

// Update implements ItemDelegate.
func (d DefaultDelegate) Update(tea.Msg, *Model) tea.Cmd { return nil }

// Render implements ItemDelegate.
func (d DefaultDelegate) Render(w io.Writer, m Model, index int, item Item) {
	style := d.Styles.Normal
	if index == m.SelectedIndex() {
		if m.Focused() {
			style = d.Styles.Selected
		} else {
			style = d.Styles.BlurredSelected
		}
	}

	label := item.Label()
	if width := m.Width(); width > 0 {
		label = ansi.Truncate(label, width, "…")
		style = style.Width(width)
	}
	io.WriteString(w, style.Render(label))
}
