// Package integerpicker provides a Bubble Tea widget for selecting an
// integer value within an optional range. The value is displayed between
// two indicator bars that show whether further movement in the respective
// direction is possible.
package integerpicker

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/extrabubbles/internal/indicator"
	"github.com/muurk/extrabubbles/modkey"
)

// ErrOutOfRange reports a value outside the configured [minimum, maximum]
// range.
var ErrOutOfRange = errors.New("value out of range")

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

// ChangedMsg reports that the picker's value changed in response to user
// input. ID identifies the emitting picker. Previous equals Value on the
// initial report enabled by WithReportInitialValue.
type ChangedMsg struct {
	ID       int
	Previous int
	Value    int
}

// Style groups the bar and value styles for one focus state. Alignment is
// part of the styles; the defaults center everything.
type Style struct {
	CoveredTop    lipgloss.Style
	ExposedTop    lipgloss.Style
	CoveredBottom lipgloss.Style
	ExposedBottom lipgloss.Style
	Value         lipgloss.Style
}

// DefaultStyles returns the default focused and blurred style sets.
func DefaultStyles() (focused, blurred Style) {
	center := lipgloss.NewStyle().Align(lipgloss.Center)
	focused = Style{
		CoveredTop:    center,
		ExposedTop:    center.Foreground(lipgloss.Color("240")),
		CoveredBottom: center,
		ExposedBottom: center.Foreground(lipgloss.Color("240")),
		Value:         center.Reverse(true),
	}
	blurred = Style{
		CoveredTop:    center.Foreground(lipgloss.Color("245")),
		ExposedTop:    center.Foreground(lipgloss.Color("238")),
		CoveredBottom: center.Foreground(lipgloss.Color("245")),
		ExposedBottom: center.Foreground(lipgloss.Color("238")),
		Value:         center,
	}
	return focused, blurred
}

// Model holds the state of the integer picker widget.
type Model struct {
	// KeyMap holds the key bindings. Replace individual bindings to
	// customize, or construct the model with WithModifier to require a
	// modifier on all of them.
	KeyMap KeyMap

	FocusedStyle Style
	BlurredStyle Style

	// Format is the Sprintf format applied to the value for display.
	Format string

	// Width is the rendered width. Zero renders at natural width.
	Width int

	// Indicator texts for the two bars.
	TopCoveredIndicator    string
	TopExposedIndicator    string
	BottomCoveredIndicator string
	BottomExposedIndicator string

	id         int
	value      int
	minimum    int
	maximum    int
	step       int
	jump       int
	ascending  bool
	focus      bool
	reportInit bool
}

// Option configures a Model during New.
type Option func(*Model)

// WithRange bounds the selectable values to [minimum, maximum], both
// inclusive.
func WithRange(minimum, maximum int) Option {
	return func(m *Model) {
		m.minimum = minimum
		m.maximum = maximum
	}
}

// WithStep sets how far a single Up or Down keypress moves the value.
func WithStep(step int) Option {
	return func(m *Model) { m.step = step }
}

// WithJump sets how far a PageUp or PageDown keypress moves the value.
func WithJump(jump int) Option {
	return func(m *Model) { m.jump = jump }
}

// WithFormat sets the Sprintf format used to display the value.
func WithFormat(format string) Option {
	return func(m *Model) { m.Format = format }
}

// WithDescending arranges the values so that they ascend toward the top
// of the display: the Up key then increases the value.
func WithDescending() Option {
	return func(m *Model) { m.ascending = false }
}

// WithModifier requires the modifier on every key binding, so unmodified
// navigation keys remain available to the surrounding program.
func WithModifier(mod modkey.Modifier) Option {
	return func(m *Model) { m.KeyMap = m.KeyMap.withModifier(mod) }
}

// WithReportInitialValue makes Init emit a ChangedMsg carrying the
// initial value.
func WithReportInitialValue() Option {
	return func(m *Model) { m.reportInit = true }
}

// New creates an integer picker holding value. Without WithRange the full
// int range is selectable. New fails if the range is inverted or the
// value lies outside it.
func New(value int, opts ...Option) (Model, error) {
	focused, blurred := DefaultStyles()
	m := Model{
		KeyMap:                 DefaultKeyMap(),
		FocusedStyle:           focused,
		BlurredStyle:           blurred,
		Format:                 "%d",
		TopCoveredIndicator:    indicator.TopCovered,
		TopExposedIndicator:    indicator.TopExposed,
		BottomCoveredIndicator: indicator.BottomCovered,
		BottomExposedIndicator: indicator.BottomExposed,
		id:                     nextID(),
		value:                  value,
		minimum:                math.MinInt,
		maximum:                math.MaxInt,
		step:                   1,
		jump:                   100,
		ascending:              true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.minimum > m.maximum {
		return Model{}, fmt.Errorf("minimum %d exceeds maximum %d", m.minimum, m.maximum)
	}
	if value < m.minimum || value > m.maximum {
		return Model{}, fmt.Errorf("initial value %d outside [%d, %d]: %w", value, m.minimum, m.maximum, ErrOutOfRange)
	}
	return m, nil
}

// ID returns the picker's unique instance identifier, matched against
// ChangedMsg.ID when several pickers coexist.
func (m Model) ID() int { return m.id }

// Value returns the current value.
func (m Model) Value() int { return m.value }

// Minimum returns the lower bound.
func (m Model) Minimum() int { return m.minimum }

// Maximum returns the upper bound.
func (m Model) Maximum() int { return m.maximum }

// AtMinimum reports whether the value equals the lower bound.
func (m Model) AtMinimum() bool { return m.value == m.minimum }

// AtMaximum reports whether the value equals the upper bound.
func (m Model) AtMaximum() bool { return m.value == m.maximum }

// Ascending reports whether values ascend toward the bottom of the
// display.
func (m Model) Ascending() bool { return m.ascending }

// SetValue sets the value directly. Values outside the range are rejected
// with ErrOutOfRange.
func (m *Model) SetValue(value int) error {
	if value < m.minimum || value > m.maximum {
		return fmt.Errorf("value %d outside [%d, %d]: %w", value, m.minimum, m.maximum, ErrOutOfRange)
	}
	m.value = value
	return nil
}

// ToMinimum sets the value to the lower bound.
func (m *Model) ToMinimum() { m.value = m.minimum }

// ToMaximum sets the value to the upper bound.
func (m *Model) ToMaximum() { m.value = m.maximum }

// SetMinimum moves the lower bound. A bound above the maximum is
// rejected. A value below the new bound is pulled up to it.
func (m *Model) SetMinimum(minimum int) error {
	if minimum > m.maximum {
		return fmt.Errorf("minimum %d exceeds maximum %d", minimum, m.maximum)
	}
	m.minimum = minimum
	if m.value < minimum {
		m.value = minimum
	}
	return nil
}

// SetMaximum moves the upper bound. A bound below the minimum is
// rejected. A value above the new bound is pulled down to it.
func (m *Model) SetMaximum(maximum int) error {
	if maximum < m.minimum {
		return fmt.Errorf("maximum %d below minimum %d", maximum, m.minimum)
	}
	m.maximum = maximum
	if m.value > maximum {
		m.value = maximum
	}
	return nil
}

// Focus marks the picker as focused, switching it to the focused styles.
func (m *Model) Focus() { m.focus = true }

// Blur removes focus.
func (m *Model) Blur() { m.focus = false }

// Focused reports whether the picker is focused.
func (m Model) Focused() bool { return m.focus }

// Init emits the initial ChangedMsg when configured with
// WithReportInitialValue.
func (m Model) Init() tea.Cmd {
	if !m.reportInit {
		return nil
	}
	return m.changed(m.value)
}

// Update handles key input. The returned command carries a ChangedMsg
// when the value moved.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	previous := m.value
	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.add(m.displayDelta(-m.step))
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.add(m.displayDelta(m.step))
	case key.Matches(keyMsg, m.KeyMap.PageUp):
		m.add(m.displayDelta(-m.jump))
	case key.Matches(keyMsg, m.KeyMap.PageDown):
		m.add(m.displayDelta(m.jump))
	case key.Matches(keyMsg, m.KeyMap.Home):
		if m.ascending {
			m.value = m.minimum
		} else {
			m.value = m.maximum
		}
	case key.Matches(keyMsg, m.KeyMap.End):
		if m.ascending {
			m.value = m.maximum
		} else {
			m.value = m.minimum
		}
	}

	if m.value != previous {
		return m, m.changed(previous)
	}
	return m, nil
}

// View renders the three rows: top bar, value, bottom bar.
func (m Model) View() string {
	style := m.BlurredStyle
	if m.focus {
		style = m.FocusedStyle
	}

	// The limit shown at the top of the display depends on the
	// arrangement.
	topLimit, bottomLimit := m.minimum, m.maximum
	if !m.ascending {
		topLimit, bottomLimit = m.maximum, m.minimum
	}

	topText, topStyle := m.TopCoveredIndicator, style.CoveredTop
	if m.value == topLimit {
		topText, topStyle = m.TopExposedIndicator, style.ExposedTop
	}
	bottomText, bottomStyle := m.BottomCoveredIndicator, style.CoveredBottom
	if m.value == bottomLimit {
		bottomText, bottomStyle = m.BottomExposedIndicator, style.ExposedBottom
	}

	rows := []string{
		indicator.Bar(topStyle, topText, m.Width),
		indicator.Bar(style.Value, fmt.Sprintf(m.Format, m.value), m.Width),
		indicator.Bar(bottomStyle, bottomText, m.Width),
	}
	return strings.Join(rows, "\n")
}

// displayDelta converts a movement of n rows toward the bottom of the
// display into a value delta, honoring the arrangement.
func (m Model) displayDelta(n int) int {
	if m.ascending {
		return n
	}
	return -n
}

// add moves the value by delta, clamping at the bounds. The unsigned
// distance arithmetic stays exact across the full int range.
func (m *Model) add(delta int) {
	if delta > 0 {
		if uint(m.maximum)-uint(m.value) < uint(delta) {
			m.value = m.maximum
		} else {
			m.value += delta
		}
		return
	}
	if delta < 0 {
		if uint(m.value)-uint(m.minimum) < uint(-delta) {
			m.value = m.minimum
		} else {
			m.value += delta
		}
	}
}

func (m Model) changed(previous int) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Previous: previous, Value: m.value}
	}
}
