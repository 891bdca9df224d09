// Package selectablerow provides a focusable row of text cells laid out in
// equal-width columns. Rows work standalone or as indicativelist entries
// through the Delegate in this package, and report activation with a
// SelectedMsg.
package selectablerow

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/extrabubbles/modkey"
)

var (
	lastID int
	idMtx  sync.Mutex
)

func nextID() int {
	idMtx.Lock()
	defer idMtx.Unlock()
	lastID++
	return lastID
}

// SelectedMsg reports that a row was activated. ID identifies the emitting
// row.
type SelectedMsg struct {
	ID    int
	Cells []string
}

// KeyMap holds the activation binding.
type KeyMap struct {
	Select key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

func (k KeyMap) withModifier(mod modkey.Modifier) KeyMap {
	return KeyMap{Select: mod.Rebind(k.Select)}
}

// Model holds the row state.
type Model struct {
	// KeyMap holds the activation binding.
	KeyMap KeyMap

	// FocusedStyle and BlurredStyle wrap the whole row and are switched
	// by Focus and Blur.
	FocusedStyle lipgloss.Style
	BlurredStyle lipgloss.Style

	id    int
	cells []string
	align lipgloss.Position
	gap   int
	width int
	focus bool
}

// Option configures the row during New.
type Option func(*Model)

// WithAlign sets the alignment of the text within each column.
func WithAlign(align lipgloss.Position) Option {
	return func(m *Model) { m.align = align }
}

// WithGap sets the number of blank columns between cells.
func WithGap(gap int) Option {
	return func(m *Model) { m.gap = max(0, gap) }
}

// WithWidth sets the rendered width. Zero renders at natural width.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithModifier requires the modifier to be held for the activation key.
func WithModifier(mod modkey.Modifier) Option {
	return func(m *Model) { m.KeyMap = m.KeyMap.withModifier(mod) }
}

// New returns a row over the given cells.
func New(cells []string, opts ...Option) Model {
	m := Model{
		KeyMap:       DefaultKeyMap(),
		FocusedStyle: lipgloss.NewStyle().Reverse(true),
		BlurredStyle: lipgloss.NewStyle(),
		id:           nextID(),
		cells:        cells,
		gap:          2,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the unique instance identifier, matched against message IDs.
func (m Model) ID() int { return m.id }

// Cells returns the cell texts.
func (m Model) Cells() []string { return m.cells }

// SetCells replaces the cell texts. The cell count may change.
func (m *Model) SetCells(cells []string) { m.cells = cells }

// Label returns the cells joined by single spaces, satisfying the
// indicativelist Item interface.
func (m Model) Label() string { return strings.Join(m.cells, " ") }

// Width returns the rendered width.
func (m Model) Width() int { return m.width }

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) { m.width = width }

// Focused reports whether the row is focused.
func (m Model) Focused() bool { return m.focus }

// Focus marks the row as focused, switching it to the focused style.
func (m *Model) Focus() { m.focus = true }

// Blur removes the focus.
func (m *Model) Blur() { m.focus = false }

// Update handles the activation key. The returned command carries a
// SelectedMsg when the row was activated.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.KeyMap.Select) {
		return m, m.selected()
	}
	return m, nil
}

// View renders the cells in equal-width columns separated by the gap. With
// a width set, cells are truncated with an ellipsis as needed; every cell
// keeps at least one column.
func (m Model) View() string {
	rowStyle := m.BlurredStyle
	if m.focus {
		rowStyle = m.FocusedStyle
	}
	gap := strings.Repeat(" ", m.gap)

	if m.width <= 0 {
		return rowStyle.Render(strings.Join(m.cells, gap))
	}
	if len(m.cells) == 0 {
		return rowStyle.Width(m.width).Render("")
	}

	avail := max(m.width-m.gap*(len(m.cells)-1), len(m.cells))
	base := avail / len(m.cells)
	extra := avail % len(m.cells)

	cellStyle := lipgloss.NewStyle().Align(m.align)
	cols := make([]string, len(m.cells))
	for i, cell := range m.cells {
		width := base
		if i < extra {
			width++
		}
		cols[i] = cellStyle.Width(width).Render(ansi.Truncate(cell, width, "…"))
	}
	return rowStyle.Render(strings.Join(cols, gap))
}

func (m Model) selected() tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{ID: m.id, Cells: m.cells}
	}
}
