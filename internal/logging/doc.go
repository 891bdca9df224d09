// Package logging provides structured logging for the extrabubbles demo.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used by the gallery application. The widget packages themselves
// never log; all logging happens in the demo layers.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (key routing, screen changes)
//   - Info: Normal operations (widget selections, settings saves)
//   - Warn: Non-fatal issues (settings fallback to defaults)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Widget selection",
//	    zap.String("widget", "datepicker"),
//	    zap.String("value", "2026-08-25"),
//	)
//
// # Configuration
//
// Logging is silent unless a level is set, either through the --log-level
// flag or the EXTRABUBBLES_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Output
//
// Logs are written to stderr in console format because the TUI owns
// stdout. Redirect stderr to a file to capture logs while the gallery
// is running:
//
//	EXTRABUBBLES_LOG_LEVEL=debug extrabubbles-demo 2>gallery.log
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
