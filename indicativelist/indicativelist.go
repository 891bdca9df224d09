// Package indicativelist provides a list box whose top and bottom rows
// indicate whether entries are hidden beyond the visible viewport.
//
// Both rows render an exposed marker while the respective end of the list
// is in view and switch to a covered marker once entries scroll out of
// sight. The covered markers may contain a %d verb, which is replaced with
// the number of hidden entries. Entries are rendered through an
// ItemDelegate, so rows can be anything from plain labels to selectable
// rows.
package indicativelist

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/internal/indicator"
	"github.com/muurk/extrabubbles/modkey"
)

// Item is an entry of the list.
type Item interface {
	// Label returns the text shown for the entry.
	Label() string
}

// StringItem is a plain text entry.
type StringItem string

// Label implements Item.
func (s StringItem) Label() string { return string(s) }

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

// ChangedMsg reports that the selection moved, carrying the previous and
// the current position. ID identifies the emitting list.
type ChangedMsg struct {
	ID       int
	Previous int
	Current  int
}

// Style groups the indicator bar and placeholder styles for one focus
// state.
type Style struct {
	CoveredTop    lipgloss.Style
	ExposedTop    lipgloss.Style
	CoveredBottom lipgloss.Style
	ExposedBottom lipgloss.Style
	Placeholder   lipgloss.Style
}

// DefaultStyles returns the default focused and blurred style sets.
func DefaultStyles() (focused, blurred Style) {
	center := lipgloss.NewStyle().Align(lipgloss.Center)
	exposed := center.Foreground(lipgloss.Color("240"))

	focused = Style{
		CoveredTop:    center,
		ExposedTop:    exposed,
		CoveredBottom: center,
		ExposedBottom: exposed,
		Placeholder:   center.Foreground(lipgloss.Color("240")),
	}
	blurred = Style{
		CoveredTop:    center.Foreground(lipgloss.Color("245")),
		ExposedTop:    center.Foreground(lipgloss.Color("238")),
		CoveredBottom: center.Foreground(lipgloss.Color("245")),
		ExposedBottom: center.Foreground(lipgloss.Color("238")),
		Placeholder:   center.Foreground(lipgloss.Color("238")),
	}
	return focused, blurred
}

// Model holds the list state.
type Model struct {
	// KeyMap holds the selection movement bindings.
	KeyMap KeyMap

	// FocusedStyle and BlurredStyle are switched by Focus and Blur.
	FocusedStyle Style
	BlurredStyle Style

	// Indicator texts for the two bars. The covered texts may contain a
	// %d verb for the hidden-entry count.
	TopCoveredIndicator    string
	TopExposedIndicator    string
	BottomCoveredIndicator string
	BottomExposedIndicator string

	// Placeholder is shown when the height admits no entry row.
	Placeholder string

	id         int
	items      []Item
	cursor     int
	offset     int
	width      int
	height     int
	focus      bool
	delegate   ItemDelegate
	reportInit bool
}

// Option configures the list during New.
type Option func(*Model)

// WithDelegate sets the entry renderer.
func WithDelegate(d ItemDelegate) Option {
	return func(m *Model) { m.delegate = d }
}

// WithHeight sets the total height in rows, including the two bars. Zero
// (the default) renders every entry.
func WithHeight(height int) Option {
	return func(m *Model) { m.height = height }
}

// WithWidth sets the rendered width. Zero renders at natural width.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithModifier requires the modifier to be held for every key binding.
func WithModifier(mod modkey.Modifier) Option {
	return func(m *Model) { m.KeyMap = m.KeyMap.withModifier(mod) }
}

// WithReportInitialSelection makes Init report the initial selection with
// a ChangedMsg whose Previous equals Current.
func WithReportInitialSelection() Option {
	return func(m *Model) { m.reportInit = true }
}

// WithSelection selects the given position, clamped to the list.
func WithSelection(position int) Option {
	return func(m *Model) { m.Select(position) }
}

// WithSelectionLast selects the last entry.
func WithSelectionLast() Option {
	return func(m *Model) { m.SelectLast() }
}

// WithSelectionMiddle selects the middle entry.
func WithSelectionMiddle() Option {
	return func(m *Model) { m.SelectMiddle() }
}

// WithSelectionRandom selects a random entry.
func WithSelectionRandom() Option {
	return func(m *Model) { m.SelectRandom() }
}

// New returns a list over the given items. The first entry is selected
// unless a selection option says otherwise.
func New(items []Item, opts ...Option) Model {
	focused, blurred := DefaultStyles()
	m := Model{
		KeyMap:                 DefaultKeyMap(),
		FocusedStyle:           focused,
		BlurredStyle:           blurred,
		TopCoveredIndicator:    indicator.TopCovered,
		TopExposedIndicator:    indicator.TopExposed,
		BottomCoveredIndicator: indicator.BottomCovered,
		BottomExposedIndicator: indicator.BottomExposed,
		Placeholder:            "Not enough space to display this widget.",
		id:                     nextID(),
		items:                  items,
		delegate:               NewDefaultDelegate(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.scroll()
	return m
}

// ID returns the unique instance identifier, matched against message IDs.
func (m Model) ID() int { return m.id }

// Len returns the number of entries.
func (m Model) Len() int { return len(m.items) }

// Items returns the entries.
func (m Model) Items() []Item { return m.items }

// SelectedIndex returns the selected position, or -1 when the list is
// empty.
func (m Model) SelectedIndex() int {
	if len(m.items) == 0 {
		return -1
	}
	return m.cursor
}

// SelectedItem returns the selected entry, if any.
func (m Model) SelectedItem() (Item, bool) {
	if len(m.items) == 0 {
		return nil, false
	}
	return m.items[m.cursor], true
}

// FirstSelected reports whether the first entry is selected.
func (m Model) FirstSelected() bool { return len(m.items) > 0 && m.cursor == 0 }

// LastSelected reports whether the last entry is selected.
func (m Model) LastSelected() bool {
	return len(m.items) > 0 && m.cursor == len(m.items)-1
}

// CoveredAbove returns the number of entries hidden above the viewport.
func (m Model) CoveredAbove() int {
	if m.visibleCount() >= len(m.items) {
		return 0
	}
	return m.offset
}

// CoveredBelow returns the number of entries hidden below the viewport.
func (m Model) CoveredBelow() int {
	return max(0, len(m.items)-m.offset-m.visibleCount())
}

// Width returns the rendered width.
func (m Model) Width() int { return m.width }

// Height returns the total height in rows.
func (m Model) Height() int { return m.height }

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) { m.width = width }

// SetHeight sets the total height in rows, including the two bars.
func (m *Model) SetHeight(height int) {
	m.height = height
	m.offset = 0
	m.scroll()
}

// Focused reports whether the list is focused.
func (m Model) Focused() bool { return m.focus }

// Focus marks the list as focused, switching it to the focused styles.
func (m *Model) Focus() { m.focus = true }

// Blur removes the focus.
func (m *Model) Blur() { m.focus = false }

// Select moves the selection to the given position, clamped to the list.
// It reports whether the selection moved.
func (m *Model) Select(position int) bool {
	if len(m.items) == 0 {
		return false
	}
	position = max(0, min(position, len(m.items)-1))
	if position == m.cursor {
		return false
	}
	m.cursor = position
	m.scroll()
	return true
}

// SelectFirst selects the first entry.
func (m *Model) SelectFirst() bool { return m.Select(0) }

// SelectLast selects the last entry.
func (m *Model) SelectLast() bool { return m.Select(len(m.items) - 1) }

// SelectMiddle selects the middle entry.
func (m *Model) SelectMiddle() bool { return m.Select(len(m.items) / 2) }

// SelectRandom selects a random entry.
func (m *Model) SelectRandom() bool {
	if len(m.items) == 0 {
		return false
	}
	return m.Select(rand.Intn(len(m.items)))
}

// SetItems replaces the entries. The held position is kept, clamped to
// the new bounds, and the viewport is reset so the selection is visible.
func (m *Model) SetItems(items []Item) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(0, len(items)-1)
	}
	m.offset = 0
	m.scroll()
}

// ResetItems replaces the entries and selects the given position, clamped
// to the new list.
func (m *Model) ResetItems(items []Item, position int) {
	m.items = items
	m.cursor = max(0, min(position, len(items)-1))
	m.offset = 0
	m.scroll()
}

// Init reports the initial selection if requested.
func (m Model) Init() tea.Cmd {
	if !m.reportInit || len(m.items) == 0 {
		return nil
	}
	return m.changed(m.cursor)
}

// Update handles selection movement and hands other messages to the
// delegate. The returned command carries a ChangedMsg when the selection
// moved.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.delegate.Update(msg, &m)
	}

	if len(m.items) == 0 {
		return m, nil
	}

	previous := m.cursor
	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.Select(m.cursor - 1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.Select(m.cursor + 1)
	case key.Matches(keyMsg, m.KeyMap.PageUp):
		m.Select(m.cursor - max(1, m.visibleCount()))
	case key.Matches(keyMsg, m.KeyMap.PageDown):
		m.Select(m.cursor + max(1, m.visibleCount()))
	case key.Matches(keyMsg, m.KeyMap.Home):
		m.SelectFirst()
	case key.Matches(keyMsg, m.KeyMap.End):
		m.SelectLast()
	default:
		return m, m.delegate.Update(msg, &m)
	}

	if m.cursor != previous {
		return m, m.changed(previous)
	}
	return m, nil
}

// View renders the top bar, the visible entries and the bottom bar. If no
// entry row fits the height, the placeholder is rendered instead.
func (m Model) View() string {
	style := m.BlurredStyle
	if m.focus {
		style = m.FocusedStyle
	}

	visible := m.visibleCount()
	if m.height > 0 && visible < 1 {
		return indicator.Bar(style.Placeholder, m.Placeholder, m.width)
	}

	var b strings.Builder
	if m.CoveredAbove() > 0 {
		b.WriteString(indicator.Bar(style.CoveredTop, coveredText(m.TopCoveredIndicator, m.CoveredAbove()), m.width))
	} else {
		b.WriteString(indicator.Bar(style.ExposedTop, m.TopExposedIndicator, m.width))
	}
	b.WriteByte('\n')

	end := min(m.offset+visible, len(m.items))
	rows := 0
	for i := m.offset; i < end; i++ {
		m.delegate.Render(&b, m, i, m.items[i])
		b.WriteByte('\n')
		rows += m.delegate.Height()
		for s := 0; s < m.delegate.Spacing() && i < end-1; s++ {
			b.WriteByte('\n')
			rows++
		}
	}

	// Blank rows keep the widget at its full height when the entries run
	// out before the bottom bar.
	if m.height > 0 {
		for ; rows < m.height-2; rows++ {
			b.WriteByte('\n')
		}
	}

	if m.CoveredBelow() > 0 {
		b.WriteString(indicator.Bar(style.CoveredBottom, coveredText(m.BottomCoveredIndicator, m.CoveredBelow()), m.width))
	} else {
		b.WriteString(indicator.Bar(style.ExposedBottom, m.BottomExposedIndicator, m.width))
	}
	return b.String()
}

// visibleCount returns how many entries fit between the bars. Without a
// height every entry is visible.
func (m Model) visibleCount() int {
	if m.height <= 0 {
		return len(m.items)
	}
	perEntry := m.delegate.Height() + m.delegate.Spacing()
	if perEntry < 1 {
		perEntry = 1
	}
	return (m.height - 2) / perEntry
}

// scroll moves the viewport the minimal distance that keeps the selection
// visible.
func (m *Model) scroll() {
	visible := m.visibleCount()
	if visible < 1 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.items)-visible))
}

func (m Model) changed(previous int) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Previous: previous, Current: m.cursor}
	}
}

func coveredText(text string, covered int) string {
	if strings.Contains(text, "%d") {
		return fmt.Sprintf(text, covered)
	}
	return text
}
