package gallery

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/modkey"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenMenu          Screen = "menu"
	ScreenDatePicker    Screen = "datepicker"
	ScreenTimePicker    Screen = "timepicker"
	ScreenIntegerPicker Screen = "integerpicker"
	ScreenListBox       Screen = "listbox"
	ScreenDialog        Screen = "dialog"
)

// ScreenForDemo resolves a demo name (subcommand argument or saved last
// demo) to its screen.
func ScreenForDemo(name string) (Screen, bool) {
	switch Screen(name) {
	case ScreenDatePicker, ScreenTimePicker, ScreenIntegerPicker, ScreenListBox, ScreenDialog:
		return Screen(name), true
	}
	return "", false
}

// Messages for screen transitions
type screenTransitionMsg struct {
	screen Screen
}

type goBackMsg struct{}

// transitionCmd requests a switch to the given screen.
func transitionCmd(screen Screen) tea.Cmd {
	return func() tea.Msg { return screenTransitionMsg{screen: screen} }
}

// goBackCmd requests a return to the previous screen. Used directly as a
// tea.Cmd.
func goBackCmd() tea.Msg { return goBackMsg{} }

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	MenuModel          MenuModel
	DatePickerModel    DatePickerModel
	TimePickerModel    TimePickerModel
	IntegerPickerModel IntegerPickerModel
	ListBoxModel       ListBoxModel
	DialogModel        DialogModel

	// Settings drive the standard pickers' layout and the theme
	Settings *config.Settings

	// UI state
	Width  int
	Height int

	// Settings are only written back when they came from disk
	persist bool
}

// NewAppModel creates a new application model starting at the specified
// screen. A nil settings value uses the defaults without persisting.
func NewAppModel(startScreen Screen, settings *config.Settings) AppModel {
	persist := settings != nil
	if settings == nil {
		settings = config.NewSettings()
	}
	SetTheme(settings.Theme)

	width, height := GetTerminalSize()

	m := AppModel{
		CurrentScreen:      startScreen,
		Settings:           settings,
		persist:            persist,
		MenuModel:          NewMenuModel(settings.LastDemo),
		DatePickerModel:    NewDatePickerModel(settings),
		TimePickerModel:    NewTimePickerModel(settings),
		IntegerPickerModel: NewIntegerPickerModel(settings),
		ListBoxModel:       NewListBoxModel(settings),
		DialogModel:        NewDialogModel(),
	}
	m.setSizes(width, height)
	return m
}

// setSizes records the terminal size and propagates it to all screens.
func (m *AppModel) setSizes(width, height int) {
	m.Width = width
	m.Height = height
	m.MenuModel.SetSize(width, height)
	m.DatePickerModel.SetSize(width, height)
	m.TimePickerModel.SetSize(width, height)
	m.IntegerPickerModel.SetSize(width, height)
	m.ListBoxModel.SetSize(width, height)
	m.DialogModel.SetSize(width, height)
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSizes(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screenTransitionMsg:
		return m.transitionTo(msg.screen)

	case goBackMsg:
		return m.goBack()
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenMenu:
		m.MenuModel, cmd = m.MenuModel.Update(msg)
	case ScreenDatePicker:
		m.DatePickerModel, cmd = m.DatePickerModel.Update(msg)
	case ScreenTimePicker:
		m.TimePickerModel, cmd = m.TimePickerModel.Update(msg)
	case ScreenIntegerPicker:
		m.IntegerPickerModel, cmd = m.IntegerPickerModel.Update(msg)
	case ScreenListBox:
		m.ListBoxModel, cmd = m.ListBoxModel.Update(msg)
	case ScreenDialog:
		m.DialogModel, cmd = m.DialogModel.Update(msg)
	}

	return m, cmd
}

// transitionTo transitions to a new screen. Demo screens start fresh on
// every visit; the menu keeps its cursor.
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	logging.LogScreenChange(string(m.CurrentScreen), string(screen))
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	m.rememberDemo(screen)

	switch screen {
	case ScreenDatePicker:
		m.DatePickerModel = NewDatePickerModel(m.Settings)
		m.DatePickerModel.SetSize(m.Width, m.Height)
	case ScreenTimePicker:
		m.TimePickerModel = NewTimePickerModel(m.Settings)
		m.TimePickerModel.SetSize(m.Width, m.Height)
	case ScreenIntegerPicker:
		m.IntegerPickerModel = NewIntegerPickerModel(m.Settings)
		m.IntegerPickerModel.SetSize(m.Width, m.Height)
	case ScreenListBox:
		m.ListBoxModel = NewListBoxModel(m.Settings)
		m.ListBoxModel.SetSize(m.Width, m.Height)
	case ScreenDialog:
		m.DialogModel = NewDialogModel()
		m.DialogModel.SetSize(m.Width, m.Height)
	}

	return m, nil
}

// rememberDemo persists the opened demo so the next run can preselect it.
func (m AppModel) rememberDemo(screen Screen) {
	if !m.persist || screen == ScreenMenu || m.Settings.LastDemo == string(screen) {
		return
	}
	m.Settings.LastDemo = string(screen)
	if err := m.Settings.Save(); err != nil {
		logging.Warn("Failed to save settings", zap.Error(err))
	}
}

// goBack returns to the menu, or quits when already there.
func (m AppModel) goBack() (tea.Model, tea.Cmd) {
	if m.CurrentScreen == ScreenMenu {
		return m, tea.Quit
	}
	return m.transitionTo(ScreenMenu)
}

// View renders the current screen
// Each screen handles its own container using RenderAppContainer()
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenMenu:
		return m.MenuModel.View()
	case ScreenDatePicker:
		return m.DatePickerModel.View()
	case ScreenTimePicker:
		return m.TimePickerModel.View()
	case ScreenIntegerPicker:
		return m.IntegerPickerModel.View()
	case ScreenListBox:
		return m.ListBoxModel.View()
	case ScreenDialog:
		// The dialog floats over the live menu screen
		return m.DialogModel.ViewOver(m.MenuModel.View())
	default:
		return "Unknown screen"
	}
}

// modifierFor maps the settings value to a widget key modifier.
func modifierFor(name string) modkey.Modifier {
	switch name {
	case config.ModifierCtrl:
		return modkey.Ctrl
	case config.ModifierAlt:
		return modkey.Alt
	case config.ModifierShift:
		return modkey.Shift
	default:
		return modkey.None
	}
}

// must unwraps the widget constructors for the fixed demo configurations,
// which cannot fail validation.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
