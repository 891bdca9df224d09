package gallery

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/version"
)

// Application branding constants
const (
	AppName   = "EXTRABUBBLES WIDGET GALLERY"
	GitHubURL = "github.com/muurk/extrabubbles"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 80  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Color palette. The variables are replaced as a set by SetTheme.
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Derived styles, rebuilt whenever the palette changes.
var (
	// Title style for screen headings
	TitleStyle lipgloss.Style

	// Subtitle style for the line under a heading
	SubtitleStyle lipgloss.Style

	// Label style for widget captions
	LabelStyle lipgloss.Style

	// FocusedLabelStyle marks the caption of the focused widget
	FocusedLabelStyle lipgloss.Style

	// ValueStyle renders a widget's current value
	ValueStyle lipgloss.Style

	// HintStyle renders dimmed inline hints
	HintStyle lipgloss.Style
)

func init() {
	buildStyles()
}

// SetTheme switches the color palette. Unknown names keep the default
// theme.
func SetTheme(name string) {
	switch name {
	case config.ThemeDim:
		PrimaryColor = lipgloss.Color("#5F5FAF")
		SecondaryColor = lipgloss.Color("#5F875F")
		AccentColor = lipgloss.Color("#AF8787")
		TextColor = lipgloss.Color("#BCBCBC")
		SubtleColor = lipgloss.Color("#585858")
		BorderColor = PrimaryColor
	default:
		PrimaryColor = lipgloss.Color("#7D56F4")
		SecondaryColor = lipgloss.Color("#43BF6D")
		AccentColor = lipgloss.Color("#FF8B94")
		TextColor = lipgloss.Color("#FFFFFF")
		SubtleColor = lipgloss.Color("#626262")
		BorderColor = PrimaryColor
	}
	buildStyles()
}

func buildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Padding(1, 0).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(SubtleColor).
		Italic(true)

	LabelStyle = lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)

	FocusedLabelStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)

	HintStyle = lipgloss.NewStyle().
		Foreground(SubtleColor)
}

// RenderTitle renders a screen heading with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// GetTerminalSize returns the current terminal width and height, with
// fallbacks for non-terminal output
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// buildHeaderContent creates header content with app name and GitHub URL
func buildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderAppContainer is the shared wrapper for all gallery screens.
// It provides:
// - Consistent full-screen panel using terminal width/height
// - Application header (name, version, GitHub URL)
// - Context-sensitive footer (help text)
// - Bordered outer container
//
// Every screen renders through this function:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderAppContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
//	}
func RenderAppContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := buildHeaderContent()

	footer := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(footerText)

	// Header section with bottom border
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4). // Leave room for outer border
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)

	// Footer section with top border
	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth - 4).
		Padding(0, 1)

	styledFooter := footerStyle.Render(footer)

	// Content area; callers control their own margins
	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	styledContent := contentStyle.Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	// Outer border container with full terminal height so dialog overlays
	// have a complete background to splice into
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	bordered := borderStyle.Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
