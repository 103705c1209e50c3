package cli

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/track"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the Timetrack daemon",
	Long:  `Manage the Timetrack daemon process.`,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE:  runDaemonStatus,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daemon",
	RunE:  runDaemonStart,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the daemon",
	RunE:  runDaemonStop,
}

func init() {
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	daemonCmd.AddCommand(daemonStopCmd)
}

func runDaemonStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Daemon is already running (PID %d, port %d).\n", info.PID, info.Port)
		return nil
	}

	// Clean up stale daemon info if it exists
	if info != nil {
		_ = config.RemoveDaemonInfo()
	}

	fmt.Print("Starting daemon...")
	if startErr := startDaemon(); startErr != nil {
		fmt.Println()
		return startErr
	}

	// Fetch fresh status to display
	_, freshInfo, err := GetDaemonStatus()
	if err != nil || freshInfo == nil {
		fmt.Println(" started.")
		return nil
	}

	fmt.Printf(" started (PID %d, port %d).\n", freshInfo.PID, freshInfo.Port)
	return nil
}

func runDaemonStatus(cmd *cobra.Command, args []string) error {
	running, info, err := GetDaemonStatus()
	if err != nil {
		return err
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println("Daemon is running.")
	fmt.Printf("  Host:       %s\n", info.Host)
	fmt.Printf("  Port:       %d\n", info.Port)
	fmt.Printf("  PID:        %d\n", info.PID)
	fmt.Printf("  Uptime:     %s\n", uptime)

	// Show the running entry, if any
	client, closeFn, err := daemonClient()
	if err != nil {
		return nil // Non-fatal: just skip entry display
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := client.GetInfo(ctx)
	if err != nil {
		return nil
	}

	for _, e := range data.Entries {
		if e.StopwatchStart != 0 {
			elapsed := e.DurationMillis + time.Now().UnixMilli() - e.StopwatchStart
			fmt.Printf("\nTracking: %s (%s)\n", e.Name, track.FormatMilliseconds(elapsed))
			return nil
		}
	}

	fmt.Println("\nNo entry running.")
	return nil
}

func runDaemonStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Daemon is not running.")
		return nil
	}

	// Send SIGTERM to the daemon process
	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find daemon process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to send stop signal: %w", err)
	}

	// Poll for shutdown (max 5 seconds)
	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		stillRunning, _, err := config.IsDaemonRunning()
		if err == nil && !stillRunning {
			fmt.Println("Daemon stopped.")
			return nil
		}
	}

	return fmt.Errorf("daemon did not stop within timeout")
}
