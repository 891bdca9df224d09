// Extrabubbles-demo is an interactive gallery of the supplementary
// terminal widgets.
//
// It tours the date, time and integer pickers, the indicative list box
// with selectable rows, and the message dialog. Display preferences such
// as the date column order and the key modifier are stored in a settings
// file and applied to the demos.
//
// Usage:
//
//	extrabubbles-demo [command] [flags]
//
// Running without arguments opens the gallery menu.
// See 'extrabubbles-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/extrabubbles/internal/logging"
	"github.com/muurk/extrabubbles/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "extrabubbles-demo",
	Short: "Supplementary Widget Gallery",
	Long: `An interactive gallery of the supplementary terminal widgets.

Tours the date, time and integer pickers, the indicative list box with
selectable rows, and the message dialog. Each widget can also be opened
directly with its own subcommand.

If no command is specified, the gallery menu will open.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return logging.InitializeFromEnv()
		}
		return logging.Initialize(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the menu when no subcommand provided
		return runMenu(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("extrabubbles-demo %s (commit: %s)\n", version.Version, version.Commit)
	},
}
