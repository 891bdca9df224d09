package selectablerow

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/extrabubbles/indicativelist"
	"github.com/muurk/extrabubbles/modkey"
)

func TestLabelJoinsCells(t *testing.T) {
	m := New([]string{"2019-02-22", "Data Science", "Train the model"})
	want := "2019-02-22 Data Science Train the model"
	if m.Label() != want {
		t.Errorf("Label() = %q, want %q", m.Label(), want)
	}
}

func TestViewNaturalWidth(t *testing.T) {
	m := New([]string{"ab", "cd"}, WithGap(3))
	if got := ansi.Strip(m.View()); got != "ab   cd" {
		t.Errorf("View() = %q, want %q", got, "ab   cd")
	}
}

func TestViewColumns(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		opts  []Option
		width int
		want  string
	}{
		{
			name:  "equal columns",
			cells: []string{"ab", "cd"},
			width: 22,
			want:  "ab          cd        ",
		},
		{
			name:  "remainder goes to the leading columns",
			cells: []string{"a", "b", "c"},
			opts:  []Option{WithGap(1)},
			width: 12,
			want:  "a    b   c  ",
		},
		{
			name:  "right alignment",
			cells: []string{"ab", "cd"},
			opts:  []Option{WithAlign(lipgloss.Right)},
			width: 10,
			want:  "  ab    cd",
		},
		{
			name:  "long cells truncate",
			cells: []string{"alphabet", "x"},
			opts:  []Option{WithGap(0)},
			width: 8,
			want:  "alp…x   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithWidth(tt.width)}, tt.opts...)
			m := New(tt.cells, opts...)
			if got := ansi.Strip(m.View()); got != tt.want {
				t.Errorf("View() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewKeepsMinimumCellWidth(t *testing.T) {
	m := New([]string{"aa", "bb", "cc"}, WithWidth(2), WithGap(0))
	view := ansi.Strip(m.View())
	if w := ansi.StringWidth(view); w < 3 {
		t.Errorf("view width = %d, want one column per cell", w)
	}
}

func TestSelect(t *testing.T) {
	m := New([]string{"a", "b"})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on the activation key")
	}
	msg, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("command yielded %T, want SelectedMsg", cmd())
	}
	if msg.ID != m.ID() {
		t.Errorf("msg.ID = %d, want %d", msg.ID, m.ID())
	}
	if len(msg.Cells) != 2 || msg.Cells[0] != "a" {
		t.Errorf("msg.Cells = %v", msg.Cells)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown}); cmd != nil {
		t.Error("no command expected for other keys")
	}
}

func TestSelectWithModifier(t *testing.T) {
	m := New([]string{"a"}, WithModifier(modkey.Alt))

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("plain enter should not activate")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter, Alt: true}); cmd == nil {
		t.Error("alt+enter should activate")
	}
}

func TestDelegateActivation(t *testing.T) {
	rows := []indicativelist.Item{
		New([]string{"first", "1"}),
		New([]string{"second", "2"}),
	}
	list := indicativelist.New(rows, indicativelist.WithDelegate(NewDelegate()))
	list.Focus()

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	list, cmd := list.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on the activation key")
	}
	msg, ok := cmd().(RowSelectedMsg)
	if !ok {
		t.Fatalf("command yielded %T, want RowSelectedMsg", cmd())
	}
	if msg.Index != 1 {
		t.Errorf("msg.Index = %d, want 1", msg.Index)
	}
	if got := msg.Row.Cells()[0]; got != "second" {
		t.Errorf("msg.Row cells = %v, want the second row", msg.Row.Cells())
	}
}

func TestDelegateRendersRows(t *testing.T) {
	rows := []indicativelist.Item{
		New([]string{"alpha", "one"}),
		New([]string{"beta", "two"}),
	}
	list := indicativelist.New(rows,
		indicativelist.WithDelegate(NewDelegate()),
		indicativelist.WithWidth(20),
	)

	view := ansi.Strip(list.View())
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
		t.Errorf("view does not contain the rows:\n%s", view)
	}
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestDelegateFallsBackToLabels(t *testing.T) {
	list := indicativelist.New(
		[]indicativelist.Item{indicativelist.StringItem("plain entry")},
		indicativelist.WithDelegate(NewDelegate()),
	)

	if !strings.Contains(ansi.Strip(list.View()), "plain entry") {
		t.Error("plain items should render their label")
	}
	if _, cmd := list.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("plain items should not activate")
	}
}
