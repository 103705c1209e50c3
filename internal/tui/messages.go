package tui

import "google.golang.org/grpc"

// DaemonConnectedMsg signals a successful gRPC connection.
type DaemonConnectedMsg struct {
	Conn *grpc.ClientConn
}

// DaemonDisconnectedMsg signals the daemon connection was lost.
type DaemonDisconnectedMsg struct{}

// EntriesLoadedMsg signals the store finished a full load.
type EntriesLoadedMsg struct {
	Err error
}

// EntryOpDoneMsg signals an entry operation finished; Err carries the
// failure, if any. The store already reflects the outcome either way.
type EntryOpDoneMsg struct {
	Err error
}

// EntrySavedMsg signals a save attempt finished. The overlay closes only on
// success.
type EntrySavedMsg struct {
	EntryID string
	Err     error
}

// EntriesChangedMsg signals the data directory changed on disk behind the
// TUI's back, e.g. by the daemon or a second client.
type EntriesChangedMsg struct{}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// TickMsg advances running timers once a second.
type TickMsg struct{}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}
