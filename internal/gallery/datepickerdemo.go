package gallery

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/datepicker"
	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/logging"
)

type datePickerKeyMap struct {
	Adjust key.Binding
	Column key.Binding
	Switch key.Binding
	Reset  key.Binding
	Back   key.Binding
}

func (k datePickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Adjust, k.Column, k.Switch, k.Reset, k.Back}
}

func (k datePickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Adjust, k.Column},
		{k.Switch, k.Reset, k.Back},
	}
}

func newDatePickerKeyMap() datePickerKeyMap {
	return datePickerKeyMap{
		Adjust: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "adjust"),
		),
		Column: key.NewBinding(
			key.WithKeys("left", "right", "tab"),
			key.WithHelp("←/→", "column"),
		),
		Switch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch picker"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// DatePickerModel demonstrates the date picker widget with two
// configurations side by side.
type DatePickerModel struct {
	Standard datepicker.Model
	Booking  datepicker.Model

	LastChanged string
	Help        help.Model
	Keys        datePickerKeyMap

	Width  int
	Height int

	focused  int
	settings *config.Settings
}

// NewDatePickerModel creates the date picker demo screen. The standard
// picker follows the column order, day format and modifier from settings;
// the booking picker is pinned to future dates.
func NewDatePickerModel(settings *config.Settings) DatePickerModel {
	if settings == nil {
		settings = config.NewSettings()
	}

	m := DatePickerModel{
		Help:     help.New(),
		Keys:     newDatePickerKeyMap(),
		settings: settings,
	}
	m.Standard = must(newStandardDatePicker(settings))
	m.Booking = must(newBookingDatePicker())
	m.Standard.Focus()
	return m
}

func newStandardDatePicker(settings *config.Settings) (datepicker.Model, error) {
	return datepicker.New(time.Now(),
		datepicker.WithColumns(columnsFor(settings.DateOrder)...),
		datepicker.WithDayFormat(dayFormatsFor(settings.DayFormat)...),
		datepicker.WithModifier(modifierFor(settings.Modifier)),
	)
}

func newBookingDatePicker() (datepicker.Model, error) {
	return datepicker.New(time.Now(),
		datepicker.WithRange(datepicker.OnlyFuture),
		datepicker.WithYearJump(5),
		datepicker.WithDayFormat(datepicker.Weekday, datepicker.DayOfMonthTwoDigit),
	)
}

// columnsFor maps the settings value to a date picker column order.
func columnsFor(order string) []datepicker.Column {
	switch order {
	case config.DateOrderMonthDayYear:
		return []datepicker.Column{datepicker.Month, datepicker.Day, datepicker.Year}
	case config.DateOrderYearMonthDay:
		return []datepicker.Column{datepicker.Year, datepicker.Month, datepicker.Day}
	default:
		return []datepicker.Column{datepicker.Day, datepicker.Month, datepicker.Year}
	}
}

// dayFormatsFor maps the settings value to a day column format.
func dayFormatsFor(format string) []datepicker.DayFormat {
	switch format {
	case config.DayFormatDay:
		return []datepicker.DayFormat{datepicker.DayOfMonth}
	case config.DayFormatTwoDigit:
		return []datepicker.DayFormat{datepicker.DayOfMonthTwoDigit}
	default:
		return []datepicker.DayFormat{datepicker.Weekday, datepicker.DayOfMonth}
	}
}

// SetSize updates the dimensions of the date picker demo screen
func (m *DatePickerModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width - 6
}

// Update handles date picker demo messages
func (m DatePickerModel) Update(msg tea.Msg) (DatePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			return m, goBackCmd
		case key.Matches(msg, m.Keys.Switch):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, m.Keys.Reset):
			m.Standard = must(newStandardDatePicker(m.settings))
			m.Booking = must(newBookingDatePicker())
			m.applyFocus()
			m.LastChanged = ""
			return m, nil
		}

	case datepicker.ChangedMsg:
		m.LastChanged = msg.Date.Format("Monday, 02 January 2006")
		logging.LogSelection("datepicker", msg.ID, msg.Date.Format(time.DateOnly))
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.Standard, cmd = m.Standard.Update(msg)
	} else {
		m.Booking, cmd = m.Booking.Update(msg)
	}
	return m, cmd
}

func (m *DatePickerModel) toggleFocus() {
	m.focused = 1 - m.focused
	m.applyFocus()
}

func (m *DatePickerModel) applyFocus() {
	if m.focused == 0 {
		m.Standard.Focus()
		m.Booking.Blur()
	} else {
		m.Standard.Blur()
		m.Booking.Focus()
	}
}

// View renders the date picker demo screen
func (m DatePickerModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Date Picker"))
	b.WriteString("\n")

	standard := m.renderPane("Standard", m.Standard, m.focused == 0)
	booking := m.renderPane("Future only", m.Booking, m.focused == 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, standard, "      ", booking))
	b.WriteString("\n")

	if m.LastChanged != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render("Changed: " + m.LastChanged))
		b.WriteString("\n")
	}

	return RenderAppContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m DatePickerModel) renderPane(label string, picker datepicker.Model, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		"",
		picker.View(),
		"",
		HintStyle.Render(picker.Date().Format(time.DateOnly)),
	)
}
