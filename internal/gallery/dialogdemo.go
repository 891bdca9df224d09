package gallery

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/messagedialog"
)

// DialogModel demonstrates the message dialog floating over the menu. It
// asks a question first and shows the picked answer afterwards.
type DialogModel struct {
	Dialog messagedialog.Model

	LastAnswer string

	Width  int
	Height int

	stage int
}

// NewDialogModel creates the message dialog demo screen
func NewDialogModel() DialogModel {
	return DialogModel{Dialog: newQuestionDialog()}
}

func newQuestionDialog() messagedialog.Model {
	return messagedialog.New(
		[]string{"Ship the new widget set to the gallery?"},
		[]string{"Yes", "No", "Maybe"},
		messagedialog.WithTitle("Message dialog"),
		messagedialog.WithWidth(46),
	)
}

func newAnswerDialog(answer string) messagedialog.Model {
	return messagedialog.New(
		[]string{fmt.Sprintf("You chose %q.", answer)},
		[]string{"Back"},
		messagedialog.WithTitle("Message dialog"),
		messagedialog.WithWidth(46),
	)
}

// SetSize updates the dimensions of the dialog demo screen
func (m *DialogModel) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// Update handles dialog demo messages
func (m DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, goBackCmd
		}

	case messagedialog.PressedMsg:
		if m.stage == 0 {
			logging.LogSelection("messagedialog", msg.ID, msg.Label)
			m.LastAnswer = msg.Label
			m.stage = 1
			m.Dialog = newAnswerDialog(msg.Label)
			return m, nil
		}
		return m, goBackCmd
	}

	var cmd tea.Cmd
	m.Dialog, cmd = m.Dialog.Update(msg)
	return m, cmd
}

// ViewOver renders the dialog floating over the given background screen.
func (m DialogModel) ViewOver(background string) string {
	return m.Dialog.Overlay(background, m.Width, m.Height)
}

// View renders the dialog centered on a filled backdrop.
func (m DialogModel) View() string {
	return m.Dialog.Overlay("", m.Width, m.Height)
}
