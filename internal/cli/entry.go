package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/timetrack-io/timetrack/internal/rpc"
	"github.com/timetrack-io/timetrack/internal/track"
)

var entryCmd = &cobra.Command{
	Use:     "entry",
	Aliases: []string{"e"},
	Short:   "Manage time entries",
	Long:    `List and mutate time entries from the command line.`,
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	RunE:  runEntryList,
}

var entryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEntryAdd,
}

var entryStartCmd = &cobra.Command{
	Use:   "start <entry>",
	Short: "Start an entry's stopwatch",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryStart,
}

var entryStopCmd = &cobra.Command{
	Use:   "stop [entry]",
	Short: "Stop an entry's stopwatch (defaults to the running entry)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEntryStop,
}

var entryDoneCmd = &cobra.Command{
	Use:   "done <entry>",
	Short: "Mark an entry completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryDone,
}

var entryReopenCmd = &cobra.Command{
	Use:   "reopen <entry>",
	Short: "Reopen a completed entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryReopen,
}

var entryAdjustCmd = &cobra.Command{
	Use:   "adjust <entry> <delta>",
	Short: "Adjust an entry's tracked time by a signed duration (e.g. +15m, -1h30m)",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryAdjust,
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <entry>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryDelete,
}

var (
	entryListAll      bool
	entryAddCategory  string
	entryDeleteForced bool
)

func init() {
	entryListCmd.Flags().BoolVarP(&entryListAll, "all", "a", false, "include completed entries")
	entryAddCmd.Flags().StringVarP(&entryAddCategory, "category", "c", "", "category name or id")
	entryDeleteCmd.Flags().BoolVarP(&entryDeleteForced, "force", "f", false, "skip confirmation")

	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryStartCmd)
	entryCmd.AddCommand(entryStopCmd)
	entryCmd.AddCommand(entryDoneCmd)
	entryCmd.AddCommand(entryReopenCmd)
	entryCmd.AddCommand(entryAdjustCmd)
	entryCmd.AddCommand(entryDeleteCmd)
}

func runEntryList(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	info, err := client.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	shown := 0
	for _, e := range info.Entries {
		if e.Completed && !entryListAll {
			continue
		}
		fmt.Println(formatEntryLine(e))
		shown++
	}

	if shown == 0 {
		fmt.Println(styleHint.Render("No entries. Add one with 'timetrack entry add <name>'."))
	}
	return nil
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("entry name is required")
	}

	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	info, err := client.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	categoryID, err := resolveCategory(info.Categories, entryAddCategory)
	if err != nil {
		return err
	}

	entry, err := client.SaveEntry(ctx, &rpc.SaveEntryRequest{
		Name:       name,
		CategoryID: categoryID,
		EntryDate:  time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Added %q (%s).", entry.Name, entry.ID)))
	return nil
}

func runEntryStart(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := findEntry(ctx, client, args[0])
	if err != nil {
		return err
	}

	started, err := client.StartEntry(ctx, entry.ID, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to start entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Tracking %q.", started.Name)))
	return nil
}

func runEntryStop(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var entry *rpc.Entry
	if len(args) > 0 {
		entry, err = findEntry(ctx, client, args[0])
		if err != nil {
			return err
		}
	} else {
		entry, err = findRunningEntry(ctx, client)
		if err != nil {
			return err
		}
	}

	stopped, err := client.StopEntry(ctx, entry.ID, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to stop entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf(
		"Stopped %q at %s.", stopped.Name, track.FormatMilliseconds(stopped.DurationMillis))))
	return nil
}

func runEntryDone(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := findEntry(ctx, client, args[0])
	if err != nil {
		return err
	}

	// A running stopwatch is folded in before completing.
	if entry.StopwatchStart != 0 {
		if _, err := client.StopEntry(ctx, entry.ID, time.Now().UnixMilli()); err != nil {
			return fmt.Errorf("failed to stop entry before completing: %w", err)
		}
	}

	done, err := client.CompleteEntry(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to complete entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf(
		"Done: %q (%s).", done.Name, track.FormatMilliseconds(done.DurationMillis))))
	return nil
}

func runEntryReopen(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := findEntry(ctx, client, args[0])
	if err != nil {
		return err
	}

	reopened, err := client.UncompleteEntry(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to reopen entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Reopened %q.", reopened.Name)))
	return nil
}

func runEntryAdjust(cmd *cobra.Command, args []string) error {
	delta, err := time.ParseDuration(strings.TrimPrefix(args[1], "+"))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", args[1], err)
	}
	if delta == 0 {
		return fmt.Errorf("delta must be non-zero")
	}

	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := findEntry(ctx, client, args[0])
	if err != nil {
		return err
	}

	adjusted, err := client.AddMilliseconds(ctx, entry.ID, delta.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to adjust entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf(
		"Adjusted %q to %s.", adjusted.Name, track.FormatMilliseconds(adjusted.DurationMillis))))
	return nil
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	client, closeFn, err := daemonClient()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry, err := findEntry(ctx, client, args[0])
	if err != nil {
		return err
	}

	if !entryDeleteForced {
		fmt.Printf("Delete %q (%s)? [y/N]: ", entry.Name, track.FormatMilliseconds(entry.DurationMillis))
		var response string
		_, _ = fmt.Scanln(&response)
		if r := strings.ToLower(strings.TrimSpace(response)); r != "y" && r != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := client.DeleteEntry(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Deleted %q.", entry.Name)))
	return nil
}

// findEntry resolves an id, id prefix or exact name to a single entry.
func findEntry(ctx context.Context, client *rpc.Client, query string) (*rpc.Entry, error) {
	info, err := client.GetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	var matches []*rpc.Entry
	for _, e := range info.Entries {
		if e.ID == query || e.Name == query {
			return e, nil
		}
		if strings.HasPrefix(e.ID, query) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no entry matches %q", query)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous, matches %d entries", query, len(matches))
	}
}

// findRunningEntry returns the entry with a running stopwatch.
func findRunningEntry(ctx context.Context, client *rpc.Client) (*rpc.Entry, error) {
	info, err := client.GetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	for _, e := range info.Entries {
		if e.StopwatchStart != 0 {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no entry running")
}

// resolveCategory matches a category by name or id, defaulting to the first.
func resolveCategory(categories []*rpc.Category, query string) (string, error) {
	if query == "" {
		if len(categories) == 0 {
			return "", nil
		}
		return categories[0].ID, nil
	}
	for _, c := range categories {
		if c.ID == query || strings.EqualFold(c.Name, query) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", query)
}

func formatEntryLine(e *rpc.Entry) string {
	badge := badgeOpen.Render("[ ]")
	switch {
	case e.StopwatchStart != 0:
		badge = badgeRunning.Render("[▶]")
	case e.Completed:
		badge = badgeDone.Render("[✓]")
	}

	duration := e.DurationMillis
	if e.StopwatchStart != 0 {
		duration += time.Now().UnixMilli() - e.StopwatchStart
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		badge,
		styleValue.Render(track.FormatMilliseconds(duration)),
		styleCommand.Render(e.Name),
		styleLabel.Render(e.CategoryName))

	if e.LinkedRecordID != "" {
		line += "  " + styleHint.Render("⚲ "+e.LinkedRecordID)
	}
	line += "  " + styleHint.Render(shortID(e.ID))
	return line
}

// shortID abbreviates a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
