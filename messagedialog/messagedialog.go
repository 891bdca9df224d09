// Package messagedialog provides a modal message box with user-response
// buttons. The dialog renders as a framed box with the title embedded in
// the top border and can be composited over a host view with Overlay,
// which splices the dialog into the background without disturbing the
// surrounding content.
package messagedialog

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
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

// PressedMsg reports that a button was pressed. ID identifies the
// emitting dialog.
type PressedMsg struct {
	ID    int
	Index int
	Label string
}

// KeyMap holds the button bindings.
type KeyMap struct {
	NextButton key.Binding
	PrevButton key.Binding
	Confirm    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextButton: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→/tab", "next button"),
		),
		PrevButton: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/shift+tab", "previous button"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevButton, k.NextButton, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevButton, k.NextButton}, {k.Confirm}}
}

// Styles holds the dialog styles. Frame carries the border definition.
type Styles struct {
	Frame         lipgloss.Style
	Title         lipgloss.Style
	Message       lipgloss.Style
	Button        lipgloss.Style
	FocusedButton lipgloss.Style
	Fill          lipgloss.Style
}

// DefaultStyles returns the default dialog styles.
func DefaultStyles() Styles {
	return Styles{
		Frame:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Title:         lipgloss.NewStyle().Bold(true),
		Message:       lipgloss.NewStyle(),
		Button:        lipgloss.NewStyle().Padding(0, 1),
		FocusedButton: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Fill:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Model holds the dialog state.
type Model struct {
	// KeyMap holds the button bindings.
	KeyMap KeyMap

	// Styles holds the dialog styles.
	Styles Styles

	id        int
	title     string
	message   []string
	buttons   []string
	focused   int
	width     int
	align     lipgloss.Position
	buttonGap int
	fillChar  string
}

// Option configures the dialog during New.
type Option func(*Model)

// WithTitle sets the title embedded in the top border.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// WithWidth sets the total dialog width including the border. Zero sizes
// the dialog to its content.
func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// WithAlign sets the alignment of the message text.
func WithAlign(align lipgloss.Position) Option {
	return func(m *Model) { m.align = align }
}

// WithButtonGap sets the number of blank columns between the buttons.
func WithButtonGap(gap int) Option {
	return func(m *Model) { m.buttonGap = max(0, gap) }
}

// WithStyles replaces the dialog styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.Styles = styles }
}

// WithFillChar sets the character Overlay fills an empty background with.
func WithFillChar(char string) Option {
	return func(m *Model) { m.fillChar = char }
}

// New returns a dialog showing the given message lines and buttons.
func New(message []string, buttons []string, opts ...Option) Model {
	m := Model{
		KeyMap:    DefaultKeyMap(),
		Styles:    DefaultStyles(),
		id:        nextID(),
		message:   message,
		buttons:   buttons,
		buttonGap: 2,
		fillChar:  "░",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the unique instance identifier, matched against message IDs.
func (m Model) ID() int { return m.id }

// Buttons returns the button labels.
func (m Model) Buttons() []string { return m.buttons }

// FocusedButton returns the index of the focused button, or -1 without
// buttons.
func (m Model) FocusedButton() int {
	if len(m.buttons) == 0 {
		return -1
	}
	return m.focused
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update cycles the focused button and confirms it. The returned command
// carries a PressedMsg when a button was pressed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.buttons) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.NextButton):
		m.focused = (m.focused + 1) % len(m.buttons)
	case key.Matches(keyMsg, m.KeyMap.PrevButton):
		m.focused = (m.focused + len(m.buttons) - 1) % len(m.buttons)
	case key.Matches(keyMsg, m.KeyMap.Confirm):
		return m, m.pressed()
	}
	return m, nil
}

// View renders the framed dialog alone: the bordered message lines, a
// blank divider and the button row, with the title spliced into the top
// border.
func (m Model) View() string {
	contentWidth := m.contentWidth()
	messageStyle := m.Styles.Message.Width(contentWidth).Align(m.align)

	parts := make([]string, 0, len(m.message)+2)
	for _, line := range m.message {
		parts = append(parts, messageStyle.Render(line))
	}
	if len(m.buttons) > 0 {
		parts = append(parts, "")
		row := m.buttonRow()
		if lipgloss.Width(row) > contentWidth {
			row = ansi.Truncate(row, contentWidth, "…")
		}
		parts = append(parts, lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, row))
	}

	frame := m.Styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.title == "" {
		return frame
	}
	return m.spliceTitle(frame)
}

// Overlay centers the dialog over the background, splicing it into the
// background lines so everything outside the dialog rectangle stays
// untouched. An empty background is filled with the fill character; with
// an empty background and no size the dialog is returned unplaced.
func (m Model) Overlay(background string, width, height int) string {
	dialog := m.View()

	if background == "" {
		if width <= 0 || height <= 0 {
			return dialog
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog,
			lipgloss.WithWhitespaceChars(m.fillChar),
			lipgloss.WithWhitespaceForeground(m.Styles.Fill.GetForeground()),
		)
	}

	lines := strings.Split(background, "\n")
	if width <= 0 {
		for _, line := range lines {
			width = max(width, lipgloss.Width(line))
		}
	}
	if height <= 0 {
		height = len(lines)
	}

	dialogLines := strings.Split(dialog, "\n")
	dialogWidth := lipgloss.Width(dialog)
	if dialogWidth > width {
		for i := range dialogLines {
			dialogLines[i] = ansi.Truncate(dialogLines[i], width, "")
		}
		dialogWidth = width
	}

	x := max(0, (width-dialogWidth)/2)
	y := max(0, (height-len(dialogLines))/2)

	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if di := i - y; di >= 0 && di < len(dialogLines) {
			line = splice(line, x, dialogLines[di])
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m Model) pressed() tea.Cmd {
	index, label := m.focused, m.buttons[m.focused]
	return func() tea.Msg {
		return PressedMsg{ID: m.id, Index: index, Label: label}
	}
}

func (m Model) buttonRow() string {
	gap := strings.Repeat(" ", m.buttonGap)
	rendered := make([]string, len(m.buttons))
	for i, label := range m.buttons {
		style := m.Styles.Button
		if i == m.focused {
			style = m.Styles.FocusedButton
		}
		rendered[i] = style.Render(label)
	}
	return strings.Join(rendered, gap)
}

// contentWidth returns the width inside the border.
func (m Model) contentWidth() int {
	if m.width > 0 {
		return max(1, m.width-2)
	}
	width := lipgloss.Width(m.title) + 2
	for _, line := range m.message {
		width = max(width, lipgloss.Width(line))
	}
	if len(m.buttons) > 0 {
		width = max(width, lipgloss.Width(m.buttonRow()))
	}
	return max(width, 1)
}

// spliceTitle embeds the title centered in the top border line.
func (m Model) spliceTitle(frame string) string {
	lines := strings.Split(frame, "\n")
	frameWidth := lipgloss.Width(lines[0])

	label := " " + m.title + " "
	if lipgloss.Width(label) > frameWidth-2 {
		label = ansi.Truncate(label, frameWidth-2, "…")
	}
	title := m.Styles.Title.Render(label)

	at := max(1, (frameWidth-lipgloss.Width(title))/2)
	lines[0] = splice(lines[0], at, title)
	return strings.Join(lines, "\n")
}

// splice overwrites the base line with the overlay starting at the given
// column, preserving the base outside the overlaid cells.
func splice(base string, at int, overlay string) string {
	left := ansi.Truncate(base, at, "")
	right := ansi.TruncateLeft(base, at+ansi.StringWidth(overlay), "")

	var pad string
	if width := ansi.StringWidth(left); width < at {
		pad = strings.Repeat(" ", at-width)
	}
	return left + pad + overlay + right
}
