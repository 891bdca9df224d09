// Package config provides settings management for the extrabubbles gallery.
//
// This package manages a YAML-based settings file that stores display
// preferences for the demo application: color theme, date picker layout,
// key modifier and the last-opened demo. The settings follow OS-specific
// conventions for storage location.
//
// # Settings File Location
//
// The settings file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/extrabubbles/gallery.yaml or $HOME/.config/extrabubbles/gallery.yaml
//   - macOS: $HOME/.config/extrabubbles/gallery.yaml
//   - Windows: %LOCALAPPDATA%\extrabubbles\gallery.yaml
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings.LastDemo = "datepicker"
//
//	// Save changes atomically
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation
//
// Loading never fails on unknown field values; they fall back to the
// defaults instead. Only an unreadable file or an unsupported version
// number is an error.
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
