// Package gallery implements the terminal user interface for the widget
// demo application.
//
// This package provides an interactive, full-screen TUI that tours the
// supplementary widgets: the date picker, time picker, integer picker,
// indicative list box, selectable rows and the message dialog. Built using
// the Bubble Tea framework, it follows the Elm architecture with immutable
// state updates and a clean Model-Update-View pattern.
//
// # Architecture
//
// The gallery is organized around a menu and five demo screens:
//   - Menu: Pick a demo from a list of selectable rows
//   - Date picker: Two date pickers with different column layouts and ranges
//   - Time picker: A free clock and a future-only departure picker
//   - Integer picker: Unbounded, percentage and descending configurations
//   - List box: Covered-count scrolling and row activation
//   - Message dialog: A modal question floating over the live menu
//
// All full screens use a unified container pattern (RenderAppContainer)
// for consistent layout with header, content area and context-sensitive
// footer. The dialog demo instead overlays its box onto the rendered menu.
//
// # Usage Example
//
//	// Create and run the gallery
//	app := gallery.NewAppModel(gallery.ScreenMenu, settings)
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Bindings
//
// Each screen has context-aware key bindings shown in its footer:
//   - Menu: ↑/↓ navigate, Enter open, q quit
//   - Pickers: ↑/↓ adjust, ←/→ column, s switch picker, r reset, ESC back
//   - List box: ↑/↓ move, Enter pick row, s switch list, ESC back
//   - Dialog: ←/→ button, Enter confirm, ESC back
//
// Ctrl+C quits from anywhere.
//
// # Settings
//
// The standard pickers follow the persisted display settings: column order
// and day format for the date picker, and the key modifier applied to the
// widget bindings. Opening a demo records it as the last demo so the menu
// can preselect it on the next run.
//
// # State Management
//
// The gallery maintains immutable state with explicit updates:
//   - Models contain all state (no global variables)
//   - Update() returns new model + commands
//   - View() is pure function of model state
//   - Demo screens are rebuilt fresh on every visit
package gallery
