// Package tray implements the system tray icon and menu for the daemon.
package tray

// DaemonState provides read-only access to daemon state for the tray.
type DaemonState interface {
	Port() int
	RunningEntry() *EntryInfo
	StopRunning()
	RequestShutdown()
}

// EntryInfo describes the running entry for display in the tray menu.
// DurationMillis includes the elapsed stopwatch time.
type EntryInfo struct {
	ID             string
	Name           string
	DurationMillis int64
}
