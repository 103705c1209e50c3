// Package cli implements the timetrack CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/timetrack-io/timetrack/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "timetrack",
	Short: "Track time across work entries",
	Long: `Timetrack keeps a list of time entries with per-entry stopwatches.
Running it without arguments starts the daemon if needed and opens the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := EnsureDaemon(); err != nil {
			return err
		}
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
