package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timetrack-io/timetrack/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Configure global settings",
	Long: `Configure global settings interactively.

This allows you to modify:
  - Single-task mode (starting an entry stops the running one)
  - Default time window and filter policy
  - Completed-entry visibility
  - Record linking (prefixes and the auto-linked record id)

Press Enter to keep the current value for any setting.`,
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	newSingleTask := promptYesNoWithCurrent(reader, "Single-task mode (start stops the running entry)?", settings.SingleTaskOnlyRunning)
	if newSingleTask != settings.SingleTaskOnlyRunning {
		settings.SingleTaskOnlyRunning = newSingleTask
		changed = true
	}

	// Default window
	fmt.Printf("Default window (day/yesterday/week/month) [%s]: ", settings.View.DefaultFilter)
	window, _ := reader.ReadString('\n')
	window = strings.TrimSpace(strings.ToLower(window))
	if window != "" {
		switch window {
		case "day", "yesterday", "week", "month":
		default:
			return fmt.Errorf("invalid window: %s (expected day, yesterday, week or month)", window)
		}
		if window != settings.View.DefaultFilter {
			settings.View.DefaultFilter = window
			changed = true
		}
	}

	// Filter policy
	fmt.Printf("Filter policy (simple/extended) [%s]: ", settings.View.FilterPolicy)
	policy, _ := reader.ReadString('\n')
	policy = strings.TrimSpace(strings.ToLower(policy))
	if policy != "" {
		if policy != "simple" && policy != "extended" {
			return fmt.Errorf("invalid filter policy: %s (expected simple or extended)", policy)
		}
		if policy != settings.View.FilterPolicy {
			settings.View.FilterPolicy = policy
			changed = true
		}
	}

	newShowCompleted := promptYesNoWithCurrent(reader, "Show completed entries by default?", settings.View.ShowCompleted)
	if newShowCompleted != settings.View.ShowCompleted {
		settings.View.ShowCompleted = newShowCompleted
		changed = true
	}

	// Record linking
	fmt.Println("\nRecord linking:")

	current := strings.Join(settings.Linking.LinkablePrefixes, ",")
	fmt.Printf("  Linkable prefixes (comma-separated) [%s]: ", current)
	prefixes, _ := reader.ReadString('\n')
	prefixes = strings.TrimSpace(prefixes)
	if prefixes != "" && prefixes != current {
		parts := strings.Split(prefixes, ",")
		cleaned := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cleaned = append(cleaned, p)
			}
		}
		settings.Linking.LinkablePrefixes = cleaned
		changed = true
	}

	fmt.Printf("  Auto-linked record id (\"-\" to clear) [%s]: ", settings.Linking.AssociatedRecordID)
	recordID, _ := reader.ReadString('\n')
	recordID = strings.TrimSpace(recordID)
	if recordID == "-" {
		recordID = ""
		if settings.Linking.AssociatedRecordID != "" {
			settings.Linking.AssociatedRecordID = ""
			changed = true
		}
	} else if recordID != "" && recordID != settings.Linking.AssociatedRecordID {
		settings.Linking.AssociatedRecordID = recordID
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nSettings updated. Restart the TUI to apply them.")
	return nil
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Printf("  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}
