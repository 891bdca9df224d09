package datepicker

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func press(m Model, keys ...tea.KeyType) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return m, cmd
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		initial time.Time
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", initial: date(2021, time.June, 15)},
		{name: "only past", initial: date(2021, time.June, 15), opts: []Option{WithRange(OnlyPast)}},
		{name: "unknown range", initial: date(2021, time.June, 15), opts: []Option{WithRange(Range(9))}, wantErr: true},
		{name: "empty day format", initial: date(2021, time.June, 15), opts: []Option{WithDayFormat()}, wantErr: true},
		{name: "unknown day format", initial: date(2021, time.June, 15), opts: []Option{WithDayFormat(DayFormat(9))}, wantErr: true},
		{name: "missing column", initial: date(2021, time.June, 15), opts: []Option{WithColumns(Day, Month)}, wantErr: true},
		{name: "duplicate column", initial: date(2021, time.June, 15), opts: []Option{WithColumns(Day, Day, Year)}, wantErr: true},
		{name: "unknown column", initial: date(2021, time.June, 15), opts: []Option{WithColumns(Day, Month, Column(7))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.initial, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !m.Date().Equal(tt.initial) {
				t.Errorf("Date() = %s, want %s", m.Date(), tt.initial)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	m, err := New(date(1999, time.December, 31))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Year() != 1999 || m.Month() != time.December || m.Day() != 31 {
		t.Errorf("getters = %d %v %d", m.Year(), m.Month(), m.Day())
	}
	if m.DateRange() != All {
		t.Errorf("DateRange() = %v, want %v", m.DateRange(), All)
	}
}

func TestDayCarryOverClamps(t *testing.T) {
	m, err := New(date(2024, time.January, 31))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Move the focus to the month picker and step to February. 2024 is a
	// leap year, so the 31st clamps to the 29th.
	m, cmd := press(m, tea.KeyRight, tea.KeyDown)
	if want := date(2024, time.February, 29); !m.Date().Equal(want) {
		t.Fatalf("Date() = %s, want %s", m.Date(), want)
	}
	if cmd == nil {
		t.Fatal("expected a command after the date change")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("command yielded %T, want ChangedMsg", cmd())
	}
	if !msg.Previous.Equal(date(2024, time.January, 31)) || !msg.Date.Equal(date(2024, time.February, 29)) {
		t.Errorf("msg = %+v", msg)
	}

	// Stepping the year to 2025 shortens February to 28 days.
	m, _ = press(m, tea.KeyRight, tea.KeyDown)
	if want := date(2025, time.February, 28); !m.Date().Equal(want) {
		t.Errorf("Date() = %s, want %s", m.Date(), want)
	}
}

func TestOnlyFutureRebasesSelections(t *testing.T) {
	anchor := date(2021, time.June, 15)
	m, err := New(anchor, WithRange(OnlyFuture))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.Date().Equal(anchor) {
		t.Fatalf("initial Date() = %s, want the anchor", m.Date())
	}

	// The anchor year starts its lists at the anchor month and day.
	// Stepping the year forward swaps in the full lists; month and day
	// must keep their displayed values.
	m, _ = press(m, tea.KeyRight, tea.KeyRight, tea.KeyDown)
	if want := date(2022, time.June, 15); !m.Date().Equal(want) {
		t.Fatalf("Date() after year step = %s, want %s", m.Date(), want)
	}

	// And back again onto the shortened lists.
	m, _ = press(m, tea.KeyUp)
	if !m.Date().Equal(anchor) {
		t.Fatalf("Date() back on the anchor year = %s, want the anchor", m.Date())
	}

	// A later month of the anchor year holds all its days.
	m, _ = press(m, tea.KeyLeft, tea.KeyDown)
	if want := date(2021, time.July, 15); !m.Date().Equal(want) {
		t.Fatalf("Date() after month step = %s, want %s", m.Date(), want)
	}
	m, _ = press(m, tea.KeyUp)
	if !m.Date().Equal(anchor) {
		t.Fatalf("Date() back in the anchor month = %s, want the anchor", m.Date())
	}

	// A day below the window clamps to the anchor day.
	if err := m.SetDate(date(2021, time.July, 1)); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	m, _ = press(m, tea.KeyUp)
	if !m.Date().Equal(anchor) {
		t.Errorf("Date() = %s, want the clamped anchor", m.Date())
	}
}

func TestOnlyPastShortensLists(t *testing.T) {
	anchor := date(2021, time.June, 15)
	m, err := New(anchor, WithRange(OnlyPast))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The anchor day is the last entry of the day list.
	m, cmd := press(m, tea.KeyEnd)
	if !m.Date().Equal(anchor) || cmd != nil {
		t.Fatalf("end on the day picker moved the date to %s", m.Date())
	}
	m, _ = press(m, tea.KeyHome)
	if want := date(2021, time.June, 1); !m.Date().Equal(want) {
		t.Fatalf("Date() = %s, want %s", m.Date(), want)
	}

	// The year picker clamps at the anchor year.
	m, cmd = press(m, tea.KeyRight, tea.KeyRight, tea.KeyEnd)
	if m.Year() != 2021 || cmd != nil {
		t.Fatalf("Year() = %d after end, want 2021", m.Year())
	}

	// Earlier years carry the full month range.
	m, _ = press(m, tea.KeyUp)
	if want := date(2020, time.June, 1); !m.Date().Equal(want) {
		t.Fatalf("Date() = %s, want %s", m.Date(), want)
	}

	// A page jump past the anchor year clamps back onto it.
	m, _ = press(m, tea.KeyPgDown)
	if want := date(2021, time.June, 1); !m.Date().Equal(want) {
		t.Errorf("Date() = %s, want %s", m.Date(), want)
	}
}

func TestOnlyFutureYearEndAnchor(t *testing.T) {
	anchor := date(2021, time.December, 31)
	m, err := New(anchor, WithRange(OnlyFuture))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Single-month, single-day lists at the anchor.
	m, cmd := press(m, tea.KeyDown)
	if !m.Date().Equal(anchor) || cmd != nil {
		t.Fatalf("day step moved the date to %s", m.Date())
	}
	m, cmd = press(m, tea.KeyRight, tea.KeyDown)
	if !m.Date().Equal(anchor) || cmd != nil {
		t.Fatalf("month step moved the date to %s", m.Date())
	}

	m, _ = press(m, tea.KeyRight, tea.KeyDown)
	if want := date(2022, time.December, 31); !m.Date().Equal(want) {
		t.Errorf("Date() = %s, want %s", m.Date(), want)
	}
}

func TestSetDate(t *testing.T) {
	anchor := date(2021, time.June, 15)

	tests := []struct {
		name    string
		opts    []Option
		target  time.Time
		wantErr bool
	}{
		{name: "all accepts anything", target: date(1532, time.February, 28)},
		{name: "past accepts the anchor", opts: []Option{WithRange(OnlyPast)}, target: anchor},
		{name: "past accepts earlier", opts: []Option{WithRange(OnlyPast)}, target: date(1999, time.December, 31)},
		{name: "past rejects later", opts: []Option{WithRange(OnlyPast)}, target: date(2021, time.June, 16), wantErr: true},
		{name: "future accepts later", opts: []Option{WithRange(OnlyFuture)}, target: date(2030, time.January, 1)},
		{name: "future rejects earlier", opts: []Option{WithRange(OnlyFuture)}, target: date(2021, time.June, 14), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(anchor, tt.opts...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			err = m.SetDate(tt.target)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("error = %v, want ErrOutOfRange", err)
				}
				if !m.Date().Equal(anchor) {
					t.Errorf("Date() = %s after a rejected SetDate", m.Date())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetDate: %v", err)
			}
			if !m.Date().Equal(tt.target) {
				t.Errorf("Date() = %s, want %s", m.Date(), tt.target)
			}
		})
	}
}

func TestSetDateAcrossAnchorYear(t *testing.T) {
	m, err := New(date(2021, time.June, 15), WithRange(OnlyFuture))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Leaving the anchor year must swap in the full month list before the
	// month is selected.
	if err := m.SetDate(date(2024, time.March, 5)); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if want := date(2024, time.March, 5); !m.Date().Equal(want) {
		t.Fatalf("Date() = %s, want %s", m.Date(), want)
	}

	// And back into the anchor year onto the shortened lists.
	if err := m.SetDate(date(2021, time.August, 2)); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if want := date(2021, time.August, 2); !m.Date().Equal(want) {
		t.Errorf("Date() = %s, want %s", m.Date(), want)
	}
}

func TestFocusMovesBetweenColumns(t *testing.T) {
	m, err := New(date(2021, time.June, 15))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Focus()

	want := []Column{Day, Month, Year, Year}
	for i, col := range want {
		if m.FocusedColumn() != col {
			t.Fatalf("step %d: FocusedColumn() = %v, want %v", i, m.FocusedColumn(), col)
		}
		m, _ = press(m, tea.KeyRight)
	}

	m, _ = press(m, tea.KeyShiftTab)
	if m.FocusedColumn() != Month {
		t.Errorf("FocusedColumn() = %v after shift+tab, want %v", m.FocusedColumn(), Month)
	}
}

func TestCustomColumnOrder(t *testing.T) {
	m, err := New(date(2021, time.June, 15), WithColumns(Year, Month, Day))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.FocusedColumn() != Year {
		t.Fatalf("FocusedColumn() = %v, want %v", m.FocusedColumn(), Year)
	}

	row := strings.Split(ansi.Strip(m.View()), "\n")[1]
	yearAt := strings.Index(row, "2021")
	monthAt := strings.Index(row, "June")
	if yearAt < 0 || monthAt < 0 || yearAt > monthAt {
		t.Errorf("columns out of order in %q", row)
	}
}

func TestView(t *testing.T) {
	m, err := New(date(2021, time.June, 15))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("view has %d lines, want 3", len(lines))
	}
	// Three 9-cell columns and two 2-cell gaps.
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 31 {
			t.Errorf("line %d width = %d, want 31", i, w)
		}
	}
	row := lines[1]
	for _, want := range []string{"Tue", "15", "June", "2021"} {
		if !strings.Contains(row, want) {
			t.Errorf("selected row %q does not contain %q", row, want)
		}
	}
}

func TestViewYearPadding(t *testing.T) {
	m, err := New(date(33, time.March, 3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "0033") {
		t.Errorf("view does not zero-pad the year:\n%s", view)
	}
}

func TestNameOverrides(t *testing.T) {
	months := [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
	weekdays := [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

	m, err := New(date(2021, time.March, 16),
		WithMonthNames(months),
		WithWeekdayNames(weekdays),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Mär") {
		t.Errorf("view does not use the month names:\n%s", view)
	}
	// 2021-03-16 is a Tuesday.
	if !strings.Contains(view, "Di") {
		t.Errorf("view does not use the weekday names:\n%s", view)
	}
}

func TestTwoDigitDayFormat(t *testing.T) {
	m, err := New(date(2021, time.June, 5), WithDayFormat(DayOfMonthTwoDigit))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "05") {
		t.Errorf("view does not zero-pad the day:\n%s", view)
	}
}
