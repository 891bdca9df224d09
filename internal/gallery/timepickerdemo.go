package gallery

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/timepicker"
)

type timePickerKeyMap struct {
	Adjust key.Binding
	Column key.Binding
	Switch key.Binding
	Reset  key.Binding
	Back   key.Binding
}

func (k timePickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Adjust, k.Column, k.Switch, k.Reset, k.Back}
}

func (k timePickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Adjust, k.Column},
		{k.Switch, k.Reset, k.Back},
	}
}

func newTimePickerKeyMap() timePickerKeyMap {
	return timePickerKeyMap{
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

// TimePickerModel demonstrates the time picker widget with a free-running
// clock and a departure picker limited to the rest of the day.
type TimePickerModel struct {
	Standard  timepicker.Model
	Departure timepicker.Model

	LastChanged string
	Help        help.Model
	Keys        timePickerKeyMap

	Width  int
	Height int

	focused  int
	settings *config.Settings
}

// NewTimePickerModel creates the time picker demo screen
func NewTimePickerModel(settings *config.Settings) TimePickerModel {
	if settings == nil {
		settings = config.NewSettings()
	}

	m := TimePickerModel{
		Help:     help.New(),
		Keys:     newTimePickerKeyMap(),
		settings: settings,
	}
	m.Standard = must(newStandardTimePicker(settings))
	m.Departure = must(newDepartureTimePicker())
	m.Standard.Focus()
	return m
}

func newStandardTimePicker(settings *config.Settings) (timepicker.Model, error) {
	return timepicker.New(timepicker.At(time.Now()),
		timepicker.WithModifier(modifierFor(settings.Modifier)),
	)
}

func newDepartureTimePicker() (timepicker.Model, error) {
	return timepicker.New(timepicker.At(time.Now()),
		timepicker.WithRange(timepicker.OnlyFuture),
		timepicker.WithHourJump(6),
	)
}

// SetSize updates the dimensions of the time picker demo screen
func (m *TimePickerModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width - 6
}

// Update handles time picker demo messages
func (m TimePickerModel) Update(msg tea.Msg) (TimePickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			return m, goBackCmd
		case key.Matches(msg, m.Keys.Switch):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, m.Keys.Reset):
			m.Standard = must(newStandardTimePicker(m.settings))
			m.Departure = must(newDepartureTimePicker())
			m.applyFocus()
			m.LastChanged = ""
			return m, nil
		}

	case timepicker.ChangedMsg:
		m.LastChanged = msg.Time.String()
		logging.LogSelection("timepicker", msg.ID, msg.Time.String())
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.Standard, cmd = m.Standard.Update(msg)
	} else {
		m.Departure, cmd = m.Departure.Update(msg)
	}
	return m, cmd
}

func (m *TimePickerModel) toggleFocus() {
	m.focused = 1 - m.focused
	m.applyFocus()
}

func (m *TimePickerModel) applyFocus() {
	if m.focused == 0 {
		m.Standard.Focus()
		m.Departure.Blur()
	} else {
		m.Standard.Blur()
		m.Departure.Focus()
	}
}

// View renders the time picker demo screen
func (m TimePickerModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Time Picker"))
	b.WriteString("\n")

	standard := m.renderPane("Standard", m.Standard, m.focused == 0)
	departure := m.renderPane("Departure (rest of today)", m.Departure, m.focused == 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, standard, "      ", departure))
	b.WriteString("\n")

	if m.LastChanged != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render("Changed: " + m.LastChanged))
		b.WriteString("\n")
	}

	return RenderAppContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m TimePickerModel) renderPane(label string, picker timepicker.Model, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		"",
		picker.View(),
		"",
		HintStyle.Render(picker.Time().String()),
	)
}
