// Package indicator holds the default glyphs and the row renderer for the
// indicator bars shared by the picker widgets.
package indicator

import "github.com/charmbracelet/lipgloss"

// Default bar texts. A covered end means more entries exist in that
// direction; an exposed end means the boundary is visible.
const (
	TopCovered    = "▲"
	TopExposed    = "───"
	BottomCovered = "▼"
	BottomExposed = "───"
)

// Bar renders a single indicator row. A non-positive width renders the
// text at its natural width.
func Bar(style lipgloss.Style, text string, width int) string {
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}
