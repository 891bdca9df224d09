// Package timepicker provides a time-of-day selector composed of three
// side-by-side pickers: an integer picker for the hour and indicative
// lists for the minute and the second.
//
// A time range may restrict the selectable times to the past or the
// future relative to the initial time; the affected minute and second
// lists are shortened at the boundary and selections are carried over by
// value when the lists are regenerated.
package timepicker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/integerpicker"
	"github.com/muurk/extrabubbles/modkey"
	"github.com/muurk/extrabubbles/selectablerow"
)

// Time is a time of day with second precision.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// At returns the time of day of the given instant.
func At(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// String formats the time as hh:mm:ss.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (t Time) valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59
}

func (t Time) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Range restricts the selectable times relative to the initial time,
// which itself stays selectable in every case.
type Range int

const (
	// All allows any time of day.
	All Range = iota

	// OnlyPast allows the initial time and earlier.
	OnlyPast

	// OnlyFuture allows the initial time and later.
	OnlyFuture
)

func (r Range) String() string {
	switch r {
	case All:
		return "all"
	case OnlyPast:
		return "only past"
	case OnlyFuture:
		return "only future"
	}
	return fmt.Sprintf("range(%d)", int(r))
}

// Column identifies one of the three pickers in the arrangement.
type Column int

const (
	Hour Column = iota
	Minute
	Second
)

func (c Column) String() string {
	switch c {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// ErrOutOfRange is returned by SetTime for times the range does not
// allow.
var ErrOutOfRange = errors.New("time outside the time range")

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

// ChangedMsg reports that the selected time moved. ID identifies the
// emitting picker.
type ChangedMsg struct {
	ID       int
	Previous Time
	Time     Time
}

// Model holds the time picker state.
type Model struct {
	// KeyMap holds the column focus bindings.
	KeyMap KeyMap

	id     int
	hour   integerpicker.Model
	minute indicativelist.Model
	second indicativelist.Model

	// First minute and second held by the respective list; entry values
	// are start plus position.
	minuteStart int
	secondStart int

	anchor        Time
	timeRange     Range
	columns       []Column
	focusedColumn int
	columnWidth   int
	gap           int
	hourJump      int
	modifier      modkey.Modifier
	styles        Styles
	focus         bool
}

// Option configures the picker during New.
type Option func(*Model)

// WithRange restricts the selectable times relative to the initial time.
func WithRange(r Range) Option {
	return func(m *Model) { m.timeRange = r }
}

// WithColumns sets the arrangement of the pickers. The arrangement must
// contain each picker exactly once.
func WithColumns(columns ...Column) Option {
	return func(m *Model) { m.columns = columns }
}

// WithHourJump sets the hour distance of a page movement.
func WithHourJump(jump int) Option {
	return func(m *Model) { m.hourJump = jump }
}

// WithColumnWidth sets the width of each picker column.
func WithColumnWidth(width int) Option {
	return func(m *Model) { m.columnWidth = width }
}

// WithGap sets the number of blank columns between the pickers.
func WithGap(gap int) Option {
	return func(m *Model) { m.gap = max(0, gap) }
}

// WithModifier requires the modifier to be held for the value movement
// keys of all three pickers.
func WithModifier(mod modkey.Modifier) Option {
	return func(m *Model) { m.modifier = mod }
}

// WithStyles replaces the styles handed down to the pickers.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// New returns a time picker selecting the given initial time.
func New(initial Time, opts ...Option) (Model, error) {
	m := Model{
		KeyMap:      DefaultKeyMap(),
		id:          nextID(),
		anchor:      initial,
		timeRange:   All,
		columns:     []Column{Hour, Minute, Second},
		columnWidth: 9,
		gap:         2,
		hourJump:    2,
		styles:      DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.validate(); err != nil {
		return Model{}, err
	}

	minH, maxH := 0, 23
	switch m.timeRange {
	case OnlyPast:
		maxH = m.anchor.Hour
	case OnlyFuture:
		minH = m.anchor.Hour
	}

	hour, err := integerpicker.New(m.anchor.Hour,
		integerpicker.WithRange(minH, maxH),
		integerpicker.WithJump(m.hourJump),
		integerpicker.WithFormat("%02d"),
		integerpicker.WithModifier(m.modifier),
	)
	if err != nil {
		return Model{}, err
	}
	m.hour = hour
	m.hour.FocusedStyle = m.styles.Hour
	m.hour.BlurredStyle = m.styles.HourBlurred
	m.hour.Width = m.columnWidth

	minuteStart, minuteEnd := m.minuteWindow(m.anchor.Hour)
	m.minuteStart = minuteStart
	m.minute = m.newList(m.listItems(minuteStart, minuteEnd), m.anchor.Minute-minuteStart)

	secondStart, secondEnd := m.secondWindow(m.anchor.Hour, m.anchor.Minute)
	m.secondStart = secondStart
	m.second = m.newList(m.listItems(secondStart, secondEnd), m.anchor.Second-secondStart)

	return m, nil
}

func (m Model) validate() error {
	if m.timeRange < All || m.timeRange > OnlyFuture {
		return fmt.Errorf("unknown time range %v", m.timeRange)
	}
	if !m.anchor.valid() {
		return fmt.Errorf("initial time %s is not a time of day", m.anchor)
	}
	if len(m.columns) != 3 {
		return fmt.Errorf("column arrangement %v does not contain each picker exactly once", m.columns)
	}
	var seen [3]bool
	for _, c := range m.columns {
		if c < Hour || c > Second {
			return fmt.Errorf("unknown column %v", c)
		}
		if seen[c] {
			return fmt.Errorf("column arrangement %v does not contain each picker exactly once", m.columns)
		}
		seen[c] = true
	}
	return nil
}

// newList builds a minute or second list with the shared configuration.
func (m Model) newList(items []indicativelist.Item, position int) indicativelist.Model {
	// Height 3 leaves exactly one visible entry between the bars.
	list := indicativelist.New(items,
		indicativelist.WithHeight(3),
		indicativelist.WithWidth(m.columnWidth),
		indicativelist.WithModifier(m.modifier),
		indicativelist.WithDelegate(selectablerow.Delegate{
			Styles:    m.styles.Items,
			SelectKey: key.NewBinding(key.WithDisabled()),
		}),
		indicativelist.WithSelection(position),
	)
	list.FocusedStyle = m.styles.List
	list.BlurredStyle = m.styles.ListBlurred
	return list
}

// ID returns the unique instance identifier, matched against message IDs.
func (m Model) ID() int { return m.id }

// Time returns the selected time of day.
func (m Model) Time() Time {
	return Time{Hour: m.hour.Value(), Minute: m.minuteValue(), Second: m.secondValue()}
}

// Hour returns the selected hour.
func (m Model) Hour() int { return m.hour.Value() }

// Minute returns the selected minute.
func (m Model) Minute() int { return m.minuteValue() }

// Second returns the selected second.
func (m Model) Second() int { return m.secondValue() }

// TimeRange returns the configured range restriction.
func (m Model) TimeRange() Range { return m.timeRange }

// SetTime moves the selection to the given time. Times the range does not
// allow are rejected with an error wrapping ErrOutOfRange.
func (m *Model) SetTime(t Time) error {
	if !t.valid() {
		return fmt.Errorf("%w: %s is not a time of day", ErrOutOfRange, t)
	}
	switch {
	case m.timeRange == OnlyPast && t.seconds() > m.anchor.seconds():
		return fmt.Errorf("%w: %s is outside the upper bound %s", ErrOutOfRange, t, m.anchor)
	case m.timeRange == OnlyFuture && t.seconds() < m.anchor.seconds():
		return fmt.Errorf("%w: %s is outside the lower bound %s", ErrOutOfRange, t, m.anchor)
	}

	if err := m.hour.SetValue(t.Hour); err != nil {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, t.Hour)
	}
	m.regenerateMinutes()
	m.minute.Select(t.Minute - m.minuteStart)
	m.regenerateSeconds()
	m.second.Select(t.Second - m.secondStart)
	return nil
}

// Focused reports whether the picker is focused.
func (m Model) Focused() bool { return m.focus }

// Focus marks the picker as focused, forwarding the focus to the focused
// column.
func (m *Model) Focus() {
	m.focus = true
	m.applyFocus()
}

// Blur removes the focus from the picker and all columns.
func (m *Model) Blur() {
	m.focus = false
	m.applyFocus()
}

// FocusedColumn returns the picker the focus is on.
func (m Model) FocusedColumn() Column { return m.columns[m.focusedColumn] }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update moves the focus between the columns and routes all other keys to
// the focused picker. The returned command carries a ChangedMsg when the
// selected time moved.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.NextPicker):
		m.focusColumn(m.focusedColumn + 1)
		return m, nil
	case key.Matches(keyMsg, m.KeyMap.PrevPicker):
		m.focusColumn(m.focusedColumn - 1)
		return m, nil
	}

	previous := m.Time()
	switch m.columns[m.focusedColumn] {
	case Hour:
		prevHour := m.hour.Value()
		m.hour, _ = m.hour.Update(msg)
		if m.hour.Value() != prevHour {
			m.regenerateMinutes()
			m.regenerateSeconds()
		}
	case Minute:
		prevPosition := m.minute.SelectedIndex()
		m.minute, _ = m.minute.Update(msg)
		if m.minute.SelectedIndex() != prevPosition {
			m.regenerateSeconds()
		}
	case Second:
		m.second, _ = m.second.Update(msg)
	}

	if now := m.Time(); now != previous {
		return m, m.changed(previous)
	}
	return m, nil
}

// View renders the pickers side by side in the configured order.
func (m Model) View() string {
	gap := strings.Repeat(" ", m.gap)
	views := make([]string, 0, len(m.columns)*2-1)
	for i, c := range m.columns {
		if i > 0 {
			views = append(views, gap)
		}
		switch c {
		case Hour:
			views = append(views, m.hour.View())
		case Minute:
			views = append(views, m.minute.View())
		case Second:
			views = append(views, m.second.View())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) focusColumn(i int) {
	m.focusedColumn = max(0, min(i, len(m.columns)-1))
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.hour.Blur()
	m.minute.Blur()
	m.second.Blur()
	if !m.focus {
		return
	}
	switch m.columns[m.focusedColumn] {
	case Hour:
		m.hour.Focus()
	case Minute:
		m.minute.Focus()
	case Second:
		m.second.Focus()
	}
}

// minuteWindow returns the first and last minute selectable in the given
// hour.
func (m Model) minuteWindow(hour int) (int, int) {
	start, end := 0, 59
	if hour == m.anchor.Hour {
		switch m.timeRange {
		case OnlyPast:
			end = m.anchor.Minute
		case OnlyFuture:
			start = m.anchor.Minute
		}
	}
	return start, end
}

// secondWindow returns the first and last second selectable in the given
// minute.
func (m Model) secondWindow(hour, minute int) (int, int) {
	start, end := 0, 59
	if hour == m.anchor.Hour && minute == m.anchor.Minute {
		switch m.timeRange {
		case OnlyPast:
			end = m.anchor.Second
		case OnlyFuture:
			start = m.anchor.Second
		}
	}
	return start, end
}

// regenerateMinutes swaps the minute list between its full and shortened
// form when the selected hour crosses the range boundary. The selected
// minute is carried over by value and clamped if it left the window.
func (m *Model) regenerateMinutes() {
	start, end := m.minuteWindow(m.hour.Value())
	if start == m.minuteStart && m.minute.Len() == end-start+1 {
		return
	}
	previous := m.minuteValue()
	m.minuteStart = start
	m.minute.ResetItems(m.listItems(start, end), previous-start)
}

// regenerateSeconds rebuilds the second list for the selected hour and
// minute. The selected second is carried over by value and clamped if it
// left the window.
func (m *Model) regenerateSeconds() {
	start, end := m.secondWindow(m.hour.Value(), m.minuteValue())
	previous := m.secondValue()
	m.secondStart = start
	m.second.ResetItems(m.listItems(start, end), previous-start)
}

func (m Model) minuteValue() int {
	return m.minuteStart + m.minute.SelectedIndex()
}

func (m Model) secondValue() int {
	return m.secondStart + m.second.SelectedIndex()
}

func (m Model) listItems(start, end int) []indicativelist.Item {
	items := make([]indicativelist.Item, 0, end-start+1)
	for v := start; v <= end; v++ {
		items = append(items, selectablerow.New(
			[]string{strconv.Itoa(v)},
			selectablerow.WithAlign(lipgloss.Center),
		))
	}
	return items
}

func (m Model) changed(previous Time) tea.Cmd {
	now := m.Time()
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Previous: previous, Time: now}
	}
}
