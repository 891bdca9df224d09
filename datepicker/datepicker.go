// Package datepicker provides a calendar date selector composed of three
// side-by-side pickers: an integer picker for the year and indicative
// lists for the month and the day.
//
// The day list always holds exactly the valid days for the selected year
// and month. A date range may restrict the selectable dates to the past
// or the future relative to the initial date; the affected month and day
// lists are shortened at the boundary and selections are carried over by
// value when the lists are regenerated.
package datepicker

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

// Range restricts the selectable dates relative to the initial date,
// which itself stays selectable in every case.
type Range int

const (
	// All allows any date.
	All Range = iota

	// OnlyPast allows the initial date and earlier.
	OnlyPast

	// OnlyFuture allows the initial date and later.
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

// DayFormat selects the columns of the day list entries.
type DayFormat int

const (
	// DayOfMonth renders the plain day number.
	DayOfMonth DayFormat = iota

	// DayOfMonthTwoDigit renders the day number zero-padded to two
	// digits.
	DayOfMonthTwoDigit

	// Weekday renders the weekday name of the date.
	Weekday
)

func (f DayFormat) String() string {
	switch f {
	case DayOfMonth:
		return "day of month"
	case DayOfMonthTwoDigit:
		return "day of month, two digits"
	case Weekday:
		return "weekday"
	}
	return fmt.Sprintf("day format(%d)", int(f))
}

// Column identifies one of the three pickers in the arrangement.
type Column int

const (
	Day Column = iota
	Month
	Year
)

func (c Column) String() string {
	switch c {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// Year values are kept to four digits, matching the year display.
const (
	minYear = 1
	maxYear = 9999
)

// ErrOutOfRange is returned by SetDate for dates the range does not
// allow.
var ErrOutOfRange = errors.New("date outside the date range")

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

// ChangedMsg reports that the selected date moved. ID identifies the
// emitting picker.
type ChangedMsg struct {
	ID       int
	Previous time.Time
	Date     time.Time
}

// Model holds the date picker state.
type Model struct {
	// KeyMap holds the column focus bindings.
	KeyMap KeyMap

	id    int
	year  integerpicker.Model
	month indicativelist.Model
	day   indicativelist.Model

	// First month and day held by the respective list; entry values are
	// start plus position.
	monthStart time.Month
	dayStart   int

	anchorYear  int
	anchorMonth time.Month
	anchorDay   int

	dateRange     Range
	monthNames    [12]string
	weekdayNames  [7]string
	dayFormat     []DayFormat
	columns       []Column
	focusedColumn int
	columnWidth   int
	gap           int
	yearJump      int
	modifier      modkey.Modifier
	styles        Styles
	focus         bool
}

// Option configures the picker during New.
type Option func(*Model)

// WithRange restricts the selectable dates relative to the initial date.
func WithRange(r Range) Option {
	return func(m *Model) { m.dateRange = r }
}

// WithDayFormat sets the columns of the day list entries, in order.
func WithDayFormat(formats ...DayFormat) Option {
	return func(m *Model) { m.dayFormat = formats }
}

// WithColumns sets the arrangement of the pickers. The arrangement must
// contain each picker exactly once.
func WithColumns(columns ...Column) Option {
	return func(m *Model) { m.columns = columns }
}

// WithMonthNames replaces the month labels, January first.
func WithMonthNames(names [12]string) Option {
	return func(m *Model) { m.monthNames = names }
}

// WithWeekdayNames replaces the weekday labels, indexed by time.Weekday
// (Sunday first).
func WithWeekdayNames(names [7]string) Option {
	return func(m *Model) { m.weekdayNames = names }
}

// WithYearJump sets the year distance of a page movement.
func WithYearJump(jump int) Option {
	return func(m *Model) { m.yearJump = jump }
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

// New returns a date picker selecting the given initial date.
func New(initial time.Time, opts ...Option) (Model, error) {
	m := Model{
		KeyMap:       DefaultKeyMap(),
		id:           nextID(),
		anchorYear:   initial.Year(),
		anchorMonth:  initial.Month(),
		anchorDay:    initial.Day(),
		dateRange:    All,
		monthNames:   defaultMonthNames(),
		weekdayNames: defaultWeekdayNames(),
		dayFormat:    []DayFormat{Weekday, DayOfMonth},
		columns:      []Column{Day, Month, Year},
		columnWidth:  9,
		gap:          2,
		yearJump:     50,
		styles:       DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if err := m.validate(); err != nil {
		return Model{}, err
	}

	minY, maxY := minYear, maxYear
	switch m.dateRange {
	case OnlyPast:
		maxY = m.anchorYear
	case OnlyFuture:
		minY = m.anchorYear
	}

	year, err := integerpicker.New(m.anchorYear,
		integerpicker.WithRange(minY, maxY),
		integerpicker.WithJump(m.yearJump),
		integerpicker.WithFormat("%04d"),
		integerpicker.WithModifier(m.modifier),
	)
	if err != nil {
		return Model{}, err
	}
	m.year = year
	m.year.FocusedStyle = m.styles.Year
	m.year.BlurredStyle = m.styles.YearBlurred
	m.year.Width = m.columnWidth

	monthStart, monthEnd := m.monthWindow(m.anchorYear)
	m.monthStart = monthStart
	m.month = m.newList(m.monthItems(monthStart, monthEnd), int(m.anchorMonth-monthStart))

	dayStart, dayEnd := m.dayWindow(m.anchorYear, m.anchorMonth)
	m.dayStart = dayStart
	m.day = m.newList(m.dayItems(m.anchorYear, m.anchorMonth, dayStart, dayEnd), m.anchorDay-dayStart)

	return m, nil
}

func (m Model) validate() error {
	if m.dateRange < All || m.dateRange > OnlyFuture {
		return fmt.Errorf("unknown date range %v", m.dateRange)
	}
	if m.anchorYear < minYear || m.anchorYear > maxYear {
		return fmt.Errorf("initial year %d outside %04d to %04d", m.anchorYear, minYear, maxYear)
	}
	if len(m.dayFormat) == 0 {
		return errors.New("day format is empty")
	}
	for _, f := range m.dayFormat {
		if f < DayOfMonth || f > Weekday {
			return fmt.Errorf("unknown day format %v", f)
		}
	}
	if len(m.columns) != 3 {
		return fmt.Errorf("column arrangement %v does not contain each picker exactly once", m.columns)
	}
	var seen [3]bool
	for _, c := range m.columns {
		if c < Day || c > Year {
			return fmt.Errorf("unknown column %v", c)
		}
		if seen[c] {
			return fmt.Errorf("column arrangement %v does not contain each picker exactly once", m.columns)
		}
		seen[c] = true
	}
	return nil
}

// newList builds a month or day list with the shared configuration.
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

// Date returns the selected date at midnight UTC.
func (m Model) Date() time.Time {
	return time.Date(m.year.Value(), m.monthValue(), m.dayValue(), 0, 0, 0, 0, time.UTC)
}

// Year returns the selected year.
func (m Model) Year() int { return m.year.Value() }

// Month returns the selected month.
func (m Model) Month() time.Month { return m.monthValue() }

// Day returns the selected day of month.
func (m Model) Day() int { return m.dayValue() }

// DateRange returns the configured range restriction.
func (m Model) DateRange() Range { return m.dateRange }

// SetDate moves the selection to the given date. The time of day and
// location are ignored. Dates the range does not allow are rejected with
// an error wrapping ErrOutOfRange.
func (m *Model) SetDate(date time.Time) error {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	anchor := time.Date(m.anchorYear, m.anchorMonth, m.anchorDay, 0, 0, 0, 0, time.UTC)

	switch {
	case m.dateRange == OnlyPast && date.After(anchor):
		return fmt.Errorf("%w: %s is outside the upper bound %s",
			ErrOutOfRange, date.Format(time.DateOnly), anchor.Format(time.DateOnly))
	case m.dateRange == OnlyFuture && date.Before(anchor):
		return fmt.Errorf("%w: %s is outside the lower bound %s",
			ErrOutOfRange, date.Format(time.DateOnly), anchor.Format(time.DateOnly))
	}

	if err := m.year.SetValue(date.Year()); err != nil {
		return fmt.Errorf("%w: year %d", ErrOutOfRange, date.Year())
	}
	m.regenerateMonths()
	m.month.Select(int(date.Month() - m.monthStart))
	m.regenerateDays()
	m.day.Select(date.Day() - m.dayStart)
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
// selected date moved.
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

	previous := m.Date()
	switch m.columns[m.focusedColumn] {
	case Year:
		prevYear := m.year.Value()
		m.year, _ = m.year.Update(msg)
		if m.year.Value() != prevYear {
			m.regenerateMonths()
			m.regenerateDays()
		}
	case Month:
		prevPosition := m.month.SelectedIndex()
		m.month, _ = m.month.Update(msg)
		if m.month.SelectedIndex() != prevPosition {
			m.regenerateDays()
		}
	case Day:
		m.day, _ = m.day.Update(msg)
	}

	if date := m.Date(); !date.Equal(previous) {
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
		case Year:
			views = append(views, m.year.View())
		case Month:
			views = append(views, m.month.View())
		case Day:
			views = append(views, m.day.View())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) focusColumn(i int) {
	m.focusedColumn = max(0, min(i, len(m.columns)-1))
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.year.Blur()
	m.month.Blur()
	m.day.Blur()
	if !m.focus {
		return
	}
	switch m.columns[m.focusedColumn] {
	case Year:
		m.year.Focus()
	case Month:
		m.month.Focus()
	case Day:
		m.day.Focus()
	}
}

// monthWindow returns the first and last month selectable in the given
// year.
func (m Model) monthWindow(year int) (time.Month, time.Month) {
	start, end := time.January, time.December
	if year == m.anchorYear {
		switch m.dateRange {
		case OnlyPast:
			end = m.anchorMonth
		case OnlyFuture:
			start = m.anchorMonth
		}
	}
	return start, end
}

// dayWindow returns the first and last day selectable in the given month.
func (m Model) dayWindow(year int, month time.Month) (int, int) {
	start, end := 1, daysIn(year, month)
	if year == m.anchorYear && month == m.anchorMonth {
		switch m.dateRange {
		case OnlyPast:
			end = m.anchorDay
		case OnlyFuture:
			start = m.anchorDay
		}
	}
	return start, end
}

// regenerateMonths swaps the month list between its full and shortened
// form when the selected year crosses the range boundary. The selected
// month is carried over by value and clamped if it left the window.
func (m *Model) regenerateMonths() {
	start, end := m.monthWindow(m.year.Value())
	if start == m.monthStart && m.month.Len() == int(end-start)+1 {
		return
	}
	previous := m.monthValue()
	m.monthStart = start
	m.month.ResetItems(m.monthItems(start, end), int(previous-start))
}

// regenerateDays rebuilds the day list for the selected year and month.
// The selected day is carried over by value and clamped if it left the
// window.
func (m *Model) regenerateDays() {
	year, month := m.year.Value(), m.monthValue()
	start, end := m.dayWindow(year, month)
	previous := m.dayValue()
	m.dayStart = start
	m.day.ResetItems(m.dayItems(year, month, start, end), previous-start)
}

func (m Model) monthValue() time.Month {
	return m.monthStart + time.Month(m.month.SelectedIndex())
}

func (m Model) dayValue() int {
	return m.dayStart + m.day.SelectedIndex()
}

func (m Model) monthItems(start, end time.Month) []indicativelist.Item {
	items := make([]indicativelist.Item, 0, int(end-start)+1)
	for month := start; month <= end; month++ {
		items = append(items, selectablerow.New(
			[]string{m.monthNames[month-1]},
			selectablerow.WithAlign(lipgloss.Center),
		))
	}
	return items
}

func (m Model) dayItems(year int, month time.Month, start, end int) []indicativelist.Item {
	items := make([]indicativelist.Item, 0, end-start+1)
	for day := start; day <= end; day++ {
		cells := make([]string, len(m.dayFormat))
		for i, f := range m.dayFormat {
			switch f {
			case DayOfMonth:
				cells[i] = strconv.Itoa(day)
			case DayOfMonthTwoDigit:
				cells[i] = fmt.Sprintf("%02d", day)
			case Weekday:
				weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
				cells[i] = m.weekdayNames[weekday]
			}
		}
		items = append(items, selectablerow.New(cells, selectablerow.WithAlign(lipgloss.Center)))
	}
	return items
}

func (m Model) changed(previous time.Time) tea.Cmd {
	date := m.Date()
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Previous: previous, Date: date}
	}
}

// daysIn returns the number of days of the given month; day zero of the
// following month is its last day.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func defaultMonthNames() [12]string {
	var names [12]string
	for i := range names {
		names[i] = time.Month(i + 1).String()
	}
	return names
}

func defaultWeekdayNames() [7]string {
	var names [7]string
	for i := range names {
		names[i] = time.Weekday(i).String()[:3]
	}
	return names
}
