package messagedialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func press(t *testing.T, m Model, keys ...tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return m, cmd
}

func lines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestView(t *testing.T) {
	m := New([]string{"Are you sure?"}, []string{"Yes", "No"}, WithTitle("Confirm"))

	want := []string{
		"┌── Confirm ──┐",
		"│Are you sure?│",
		"│             │",
		"│  Yes    No  │",
		"└─────────────┘",
	}
	assertLines(t, lines(m.View()), want)
}

func TestViewWithoutButtons(t *testing.T) {
	m := New([]string{"Hi"}, nil)

	want := []string{
		"┌──┐",
		"│Hi│",
		"└──┘",
	}
	assertLines(t, lines(m.View()), want)
}

func TestViewWrapsLongMessage(t *testing.T) {
	m := New([]string{"hello world"}, nil, WithWidth(8))

	want := []string{
		"┌──────┐",
		"│hello │",
		"│world │",
		"└──────┘",
	}
	assertLines(t, lines(m.View()), want)
}

func TestViewTruncatesLongTitle(t *testing.T) {
	m := New([]string{"Hi"}, nil, WithTitle("Extremely Long"), WithWidth(10))

	got := lines(m.View())
	if got[0] != "┌ Extrem…┐" {
		t.Errorf("top border = %q, want %q", got[0], "┌ Extrem…┐")
	}
}

func TestCycleButtons(t *testing.T) {
	m := New(nil, []string{"Yes", "No", "Cancel"})
	if got := m.FocusedButton(); got != 0 {
		t.Fatalf("initial focused button = %d, want 0", got)
	}

	steps := []struct {
		key  tea.KeyType
		want int
	}{
		{tea.KeyRight, 1},
		{tea.KeyTab, 2},
		{tea.KeyRight, 0},
		{tea.KeyLeft, 2},
		{tea.KeyShiftTab, 1},
	}
	for _, step := range steps {
		m, _ = press(t, m, step.key)
		if got := m.FocusedButton(); got != step.want {
			t.Errorf("after %v: focused button = %d, want %d", step.key, got, step.want)
		}
	}
}

func TestPressedMsg(t *testing.T) {
	m := New([]string{"Save changes?"}, []string{"Yes", "No"})

	m, cmd := press(t, m, tea.KeyRight, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected a command after confirming")
	}
	msg, ok := cmd().(PressedMsg)
	if !ok {
		t.Fatalf("expected PressedMsg, got %T", cmd())
	}
	if msg.ID != m.ID() {
		t.Errorf("message ID = %d, want %d", msg.ID, m.ID())
	}
	if msg.Index != 1 || msg.Label != "No" {
		t.Errorf("got button %d %q, want 1 %q", msg.Index, msg.Label, "No")
	}
}

func TestNoButtons(t *testing.T) {
	m := New([]string{"notice"}, nil)
	if got := m.FocusedButton(); got != -1 {
		t.Fatalf("focused button = %d, want -1", got)
	}

	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil {
		t.Error("confirming without buttons should not emit a command")
	}
	if got := m.FocusedButton(); got != -1 {
		t.Errorf("focused button = %d, want -1", got)
	}
}

func TestOverlayCentersOnBackground(t *testing.T) {
	background := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")
	m := New([]string{"Hi"}, nil)

	want := []string{
		"..........",
		"...┌──┐...",
		"...│Hi│...",
		"...└──┘...",
		"..........",
	}
	assertLines(t, lines(m.Overlay(background, 0, 0)), want)
}

func TestOverlayFillsEmptyBackground(t *testing.T) {
	m := New([]string{"Hi"}, nil)

	want := []string{
		"░░░░░░░░",
		"░░┌──┐░░",
		"░░│Hi│░░",
		"░░└──┘░░",
		"░░░░░░░░",
	}
	assertLines(t, lines(m.Overlay("", 8, 5)), want)
}

func TestOverlayUnplacedWithoutBackground(t *testing.T) {
	m := New([]string{"Hi"}, nil)
	if got := m.Overlay("", 0, 0); got != m.View() {
		t.Errorf("got %q, want the bare dialog", got)
	}
}

func TestOverlayClipsTallDialog(t *testing.T) {
	background := strings.Join([]string{"......", "......", "......"}, "\n")
	m := New([]string{"a", "b", "c", "d", "e"}, nil)

	want := []string{
		".┌──┐.",
		".│a │.",
		".│b │.",
	}
	assertLines(t, lines(m.Overlay(background, 6, 3)), want)
}

func TestOverlayTruncatesWideDialog(t *testing.T) {
	background := strings.Join([]string{".....", ".....", "....."}, "\n")
	m := New([]string{"Hello"}, nil)

	want := []string{
		"┌────",
		"│Hell",
		"└────",
	}
	assertLines(t, lines(m.Overlay(background, 5, 3)), want)
}

func TestOverlayPadsShortBackgroundLines(t *testing.T) {
	m := New([]string{"Hi"}, nil)

	want := []string{
		"  ┌──┐",
		"  │Hi│",
		"  └──┘",
	}
	assertLines(t, lines(m.Overlay("\n\n", 8, 3)), want)
}

func BenchmarkOverlay(b *testing.B) {
	background := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	m := New([]string{"Are you sure?"}, []string{"Yes", "No"}, WithTitle("Confirm"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Overlay(background, 80, 24)
	}
}
