package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/selectablerow"
)

// menuEntry describes one demo reachable from the menu.
type menuEntry struct {
	screen Screen
	name   string
	blurb  string
}

var menuEntries = []menuEntry{
	{ScreenDatePicker, "Date picker", "pick a date column by column"},
	{ScreenTimePicker, "Time picker", "dial in a time of day"},
	{ScreenIntegerPicker, "Integer picker", "step through bounded numbers"},
	{ScreenListBox, "List box", "scroll behind covered-count bars"},
	{ScreenDialog, "Message dialog", "answer a question over this menu"},
}

type menuKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Quit key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Quit},
	}
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous demo"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next demo"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open demo"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the demo selection screen
type MenuModel struct {
	List indicativelist.Model
	Help help.Model
	Keys menuKeyMap

	Width  int
	Height int
}

// NewMenuModel creates the menu, preselecting the last opened demo when
// one is recorded.
func NewMenuModel(lastDemo string) MenuModel {
	items := make([]indicativelist.Item, len(menuEntries))
	for i, entry := range menuEntries {
		items[i] = selectablerow.New([]string{entry.name, entry.blurb})
	}

	opts := []indicativelist.Option{
		indicativelist.WithDelegate(selectablerow.NewDelegate()),
	}
	for i, entry := range menuEntries {
		if string(entry.screen) == lastDemo {
			opts = append(opts, indicativelist.WithSelection(i))
			break
		}
	}

	lst := indicativelist.New(items, opts...)
	lst.Focus()

	return MenuModel{
		List: lst,
		Help: help.New(),
		Keys: newMenuKeyMap(),
	}
}

// SetSize updates the dimensions of the menu screen
func (m *MenuModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.List.SetWidth(min(width-10, 72))
	m.Help.Width = width - 6
}

// Update handles menu messages
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}

	case selectablerow.RowSelectedMsg:
		if msg.Index < 0 || msg.Index >= len(menuEntries) {
			return m, nil
		}
		entry := menuEntries[msg.Index]
		logging.Debug("Menu choice",
			zap.Int("index", msg.Index),
			zap.String("demo", string(entry.screen)),
		)
		return m, transitionCmd(entry.screen)
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the menu screen
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Supplementary Widgets"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle("A tour of the extra picker and dialog components."))
	b.WriteString("\n\n")
	b.WriteString(m.List.View())
	b.WriteString("\n")

	return RenderAppContainer(b.String(), m.Help.View(m.Keys), m.Width, m.Height)
}
