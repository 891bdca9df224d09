package gallery

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/integerpicker"
	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/logging"
)

type integerPickerKeyMap struct {
	Adjust key.Binding
	Jump   key.Binding
	Switch key.Binding
	Reset  key.Binding
	Back   key.Binding
}

func (k integerPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Adjust, k.Jump, k.Switch, k.Reset, k.Back}
}

func (k integerPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Adjust, k.Jump},
		{k.Switch, k.Reset, k.Back},
	}
}

func newIntegerPickerKeyMap() integerPickerKeyMap {
	return integerPickerKeyMap{
		Adjust: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "adjust"),
		),
		Jump: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "jump"),
		),
		Switch: key.NewBinding(
			key.WithKeys("s", "tab"),
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

// IntegerPickerModel demonstrates the integer picker widget in three
// configurations: unbounded, a bounded percentage and a descending scale.
type IntegerPickerModel struct {
	Plain      integerpicker.Model
	Percent    integerpicker.Model
	Descending integerpicker.Model

	LastChanged string
	Help        help.Model
	Keys        integerPickerKeyMap

	Width  int
	Height int

	focused  int
	settings *config.Settings
}

// NewIntegerPickerModel creates the integer picker demo screen
func NewIntegerPickerModel(settings *config.Settings) IntegerPickerModel {
	if settings == nil {
		settings = config.NewSettings()
	}

	m := IntegerPickerModel{
		Help:     help.New(),
		Keys:     newIntegerPickerKeyMap(),
		settings: settings,
	}
	m.Plain = must(newPlainIntegerPicker(settings))
	m.Percent = must(newPercentIntegerPicker())
	m.Descending = must(newDescendingIntegerPicker())
	m.applyFocus()
	return m
}

func newPlainIntegerPicker(settings *config.Settings) (integerpicker.Model, error) {
	return integerpicker.New(0,
		integerpicker.WithJump(100),
		integerpicker.WithModifier(modifierFor(settings.Modifier)),
	)
}

func newPercentIntegerPicker() (integerpicker.Model, error) {
	return integerpicker.New(50,
		integerpicker.WithRange(0, 100),
		integerpicker.WithJump(10),
		integerpicker.WithFormat("%d%%"),
	)
}

func newDescendingIntegerPicker() (integerpicker.Model, error) {
	return integerpicker.New(5,
		integerpicker.WithRange(0, 10),
		integerpicker.WithDescending(),
	)
}

// SetSize updates the dimensions of the integer picker demo screen
func (m *IntegerPickerModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width - 6
}

// Update handles integer picker demo messages
func (m IntegerPickerModel) Update(msg tea.Msg) (IntegerPickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			return m, goBackCmd
		case key.Matches(msg, m.Keys.Switch):
			m.focused = (m.focused + 1) % 3
			m.applyFocus()
			return m, nil
		case key.Matches(msg, m.Keys.Reset):
			m.Plain = must(newPlainIntegerPicker(m.settings))
			m.Percent = must(newPercentIntegerPicker())
			m.Descending = must(newDescendingIntegerPicker())
			m.applyFocus()
			m.LastChanged = ""
			return m, nil
		}

	case integerpicker.ChangedMsg:
		m.LastChanged = strconv.Itoa(msg.Value)
		logging.LogSelection("integerpicker", msg.ID, strconv.Itoa(msg.Value))
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focused {
	case 0:
		m.Plain, cmd = m.Plain.Update(msg)
	case 1:
		m.Percent, cmd = m.Percent.Update(msg)
	case 2:
		m.Descending, cmd = m.Descending.Update(msg)
	}
	return m, cmd
}

func (m *IntegerPickerModel) applyFocus() {
	pickers := []*integerpicker.Model{&m.Plain, &m.Percent, &m.Descending}
	for i, p := range pickers {
		if i == m.focused {
			p.Focus()
		} else {
			p.Blur()
		}
	}
}

// View renders the integer picker demo screen
func (m IntegerPickerModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Integer Picker"))
	b.WriteString("\n")

	panes := []string{
		m.renderPane("Unbounded", m.Plain, m.focused == 0),
		"      ",
		m.renderPane("Percent", m.Percent, m.focused == 1),
		"      ",
		m.renderPane("Countdown", m.Descending, m.focused == 2),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")

	if m.LastChanged != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render("Changed: " + m.LastChanged))
		b.WriteString("\n")
	}

	return RenderAppContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m IntegerPickerModel) renderPane(label string, picker integerpicker.Model, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		"",
		picker.View(),
		"",
		HintStyle.Render(strconv.Itoa(picker.Value())),
	)
}
