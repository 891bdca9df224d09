package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/selectablerow"
)

var elementNames = []string{
	"Hydrogen", "Helium", "Lithium", "Beryllium", "Boron",
	"Carbon", "Nitrogen", "Oxygen", "Fluorine", "Neon",
	"Sodium", "Magnesium", "Aluminium", "Silicon", "Phosphorus",
	"Sulfur", "Chlorine", "Argon", "Potassium", "Calcium",
}

var groceryRows = [][]string{
	{"Apples", "6", "2.40"},
	{"Bread", "1", "1.80"},
	{"Coffee", "2", "9.00"},
	{"Milk", "2", "2.20"},
	{"Oats", "1", "1.50"},
	{"Pasta", "3", "3.30"},
	{"Tomatoes", "8", "2.80"},
}

type listBoxKeyMap struct {
	Move   key.Binding
	Pick   key.Binding
	Switch key.Binding
	Back   key.Binding
}

func (k listBoxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pick, k.Switch, k.Back}
}

func (k listBoxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Pick},
		{k.Switch, k.Back},
	}
}

func newListBoxKeyMap() listBoxKeyMap {
	return listBoxKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick row"),
		),
		Switch: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "switch list"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ListBoxModel demonstrates the indicative list widget: a scrolling list
// with covered-count bars, and a list of selectable rows.
type ListBoxModel struct {
	Elements  indicativelist.Model
	Groceries indicativelist.Model

	LastPicked string
	Help       help.Model
	Keys       listBoxKeyMap

	Width  int
	Height int

	focused  int
	settings *config.Settings
}

// NewListBoxModel creates the list box demo screen
func NewListBoxModel(settings *config.Settings) ListBoxModel {
	if settings == nil {
		settings = config.NewSettings()
	}

	m := ListBoxModel{
		Elements:  newElementList(settings),
		Groceries: newGroceryList(settings),
		Help:      help.New(),
		Keys:      newListBoxKeyMap(),
		settings:  settings,
	}
	m.applyFocus()
	return m
}

func newElementList(settings *config.Settings) indicativelist.Model {
	items := make([]indicativelist.Item, len(elementNames))
	for i, name := range elementNames {
		items[i] = indicativelist.StringItem(name)
	}

	lst := indicativelist.New(items,
		indicativelist.WithHeight(9),
		indicativelist.WithWidth(20),
		indicativelist.WithSelectionMiddle(),
		indicativelist.WithModifier(modifierFor(settings.Modifier)),
	)
	lst.TopCoveredIndicator = "%d more"
	lst.BottomCoveredIndicator = "%d more"
	return lst
}

func newGroceryList(settings *config.Settings) indicativelist.Model {
	items := make([]indicativelist.Item, len(groceryRows))
	for i, cells := range groceryRows {
		items[i] = selectablerow.New(cells, selectablerow.WithGap(2))
	}

	return indicativelist.New(items,
		indicativelist.WithDelegate(selectablerow.NewDelegate()),
		indicativelist.WithHeight(9),
		indicativelist.WithWidth(30),
		indicativelist.WithModifier(modifierFor(settings.Modifier)),
	)
}

// SetSize updates the dimensions of the list box demo screen
func (m *ListBoxModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width - 6
}

// Update handles list box demo messages
func (m ListBoxModel) Update(msg tea.Msg) (ListBoxModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Back):
			return m, goBackCmd
		case key.Matches(msg, m.Keys.Switch):
			m.focused = 1 - m.focused
			m.applyFocus()
			return m, nil
		}

	case indicativelist.ChangedMsg:
		logging.Debug("List cursor moved",
			zap.Int("list_id", msg.ID),
			zap.Int("position", msg.Current),
		)
		return m, nil

	case selectablerow.RowSelectedMsg:
		m.LastPicked = msg.Row.Label()
		logging.LogSelection("selectablerow", msg.Index, m.LastPicked)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.Elements, cmd = m.Elements.Update(msg)
	} else {
		m.Groceries, cmd = m.Groceries.Update(msg)
	}
	return m, cmd
}

func (m *ListBoxModel) applyFocus() {
	if m.focused == 0 {
		m.Elements.Focus()
		m.Groceries.Blur()
	} else {
		m.Elements.Blur()
		m.Groceries.Focus()
	}
}

// View renders the list box demo screen
func (m ListBoxModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("List Box"))
	b.WriteString("\n")

	elements := m.renderPane("Elements", m.Elements.View(), m.focused == 0)
	groceries := m.renderPane("Groceries (enter to pick)", m.Groceries.View(), m.focused == 1)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, elements, "      ", groceries))
	b.WriteString("\n")

	if m.LastPicked != "" {
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render("Picked: " + m.LastPicked))
		b.WriteString("\n")
	}

	return RenderAppContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}

func (m ListBoxModel) renderPane(label, list string, focused bool) string {
	style := LabelStyle
	if focused {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		"",
		list,
	)
}
