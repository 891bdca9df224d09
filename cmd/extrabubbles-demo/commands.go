package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/extrabubbles/internal/config"
	"github.com/muurk/extrabubbles/internal/gallery"
	"github.com/muurk/extrabubbles/internal/logging"
)

// Gallery command flags
var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity to stderr (debug, info, warn, error)")

	// Add subcommands directly to root
	rootCmd.AddCommand(datepickerCmd)
	rootCmd.AddCommand(timepickerCmd)
	rootCmd.AddCommand(integerpickerCmd)
	rootCmd.AddCommand(listboxCmd)
	rootCmd.AddCommand(dialogCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(setCmd)
}

// datepickerCmd opens the date picker demo directly
var datepickerCmd = &cobra.Command{
	Use:   "datepicker",
	Short: "Open the date picker demo",
	Long: `Open the date picker demo without going through the menu.

Shows a standard date picker following the stored column order and day
format next to a future-only picker with five-year jumps.`,
	Example: `  # Open the date picker demo
  extrabubbles-demo datepicker

  # With a different column order first
  extrabubbles-demo set date-order year-month-day
  extrabubbles-demo datepicker`,
	RunE: demoRunner(gallery.ScreenDatePicker),
}

// timepickerCmd opens the time picker demo directly
var timepickerCmd = &cobra.Command{
	Use:   "timepicker",
	Short: "Open the time picker demo",
	Long: `Open the time picker demo without going through the menu.

Shows a free-running clock picker next to a departure picker that only
accepts times later in the day.`,
	RunE: demoRunner(gallery.ScreenTimePicker),
}

// integerpickerCmd opens the integer picker demo directly
var integerpickerCmd = &cobra.Command{
	Use:   "integerpicker",
	Short: "Open the integer picker demo",
	Long: `Open the integer picker demo without going through the menu.

Shows an unbounded counter, a percentage picker and a descending
countdown scale side by side.`,
	RunE: demoRunner(gallery.ScreenIntegerPicker),
}

// listboxCmd opens the list box demo directly
var listboxCmd = &cobra.Command{
	Use:   "listbox",
	Short: "Open the list box demo",
	Long: `Open the list box demo without going through the menu.

Shows a scrolling list with covered-entry counts in its bars and a list
of selectable rows that can be activated with enter.`,
	RunE: demoRunner(gallery.ScreenListBox),
}

// dialogCmd opens the message dialog demo directly
var dialogCmd = &cobra.Command{
	Use:   "dialog",
	Short: "Open the message dialog demo",
	Long: `Open the message dialog demo without going through the menu.

Shows a modal message box with buttons floating over the gallery menu.`,
	RunE: demoRunner(gallery.ScreenDialog),
}

// settingsCmd displays the stored display settings
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the stored display settings",
	Long: `Display the stored display settings and where they live.

The settings control the appearance of the demos: the color theme, the
date picker column order and day format, and the key modifier required
by the widget bindings.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	configPath, _ := config.GetConfigPath()
	fmt.Printf("Settings file: %s\n\n", configPath)
	fmt.Printf("  theme:       %s\n", settings.Theme)
	fmt.Printf("  date-order:  %s\n", settings.DateOrder)
	fmt.Printf("  day-format:  %s\n", settings.DayFormat)
	fmt.Printf("  modifier:    %s\n", settings.Modifier)
	if settings.LastDemo != "" {
		fmt.Printf("  last demo:   %s\n", settings.LastDemo)
	}

	return nil
}

// setCmd changes one stored display setting
var setCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Change a stored display setting",
	Long: `Change one of the stored display settings.

Available settings and values:
  theme       default, dim
  date-order  day-month-year, month-day-year, year-month-day
  day-format  weekday-day, day, day-two-digit
  modifier    none, ctrl, alt, shift

The modifier is added to every widget key binding, so "ctrl" means the
pickers react to ctrl+up instead of up. This keeps the plain arrow keys
free when a picker is embedded in a larger form.`,
	Example: `  # Use the dim theme
  extrabubbles-demo set theme dim

  # Show the month before the day in the date picker
  extrabubbles-demo set date-order month-day-year

  # Require ctrl with the widget keys
  extrabubbles-demo set modifier ctrl`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	name, value := args[0], args[1]
	if err := settings.Set(name, value); err != nil {
		return err
	}
	if err := settings.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("✓ %s set to %s\n", name, value)
	return nil
}

// runMenu opens the gallery at the menu screen
func runMenu(cmd *cobra.Command, args []string) error {
	return runGallery(gallery.ScreenMenu)
}

// demoRunner returns a RunE that opens the gallery at the given demo
func demoRunner(screen gallery.Screen) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return runGallery(screen)
	}
}

func runGallery(screen gallery.Screen) error {
	defer logging.Sync()

	// A broken settings file should not keep the gallery from starting.
	// Passing nil settings runs on defaults without writing anything back.
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Warn("Could not load settings, using defaults", zap.Error(err))
		settings = nil
	}

	model := gallery.NewAppModel(screen, settings)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("Gallery terminated with error", zap.Error(err))
		return fmt.Errorf("gallery error: %w", err)
	}

	return nil
}
