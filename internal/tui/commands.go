package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/track"
)

func connectDaemonCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := config.LoadDaemonInfo()
		if err != nil || info == nil {
			return ErrorMsg{Err: fmt.Errorf("daemon not running")}
		}

		addr := fmt.Sprintf("%s:%d", info.Host, info.Port)
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to connect to daemon: %w", err)}
		}

		return DaemonConnectedMsg{Conn: conn}
	}
}

func loadEntriesCmd(store *track.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := store.Load(ctx)
		if err != nil && isConnectionLost(err) {
			return DaemonDisconnectedMsg{}
		}
		return EntriesLoadedMsg{Err: err}
	}
}

func refreshCmd(store *track.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := store.Refresh(ctx)
		if err != nil && isConnectionLost(err) {
			return DaemonDisconnectedMsg{}
		}
		return EntriesLoadedMsg{Err: err}
	}
}

// entryOpCmd runs a single store mutation against the daemon, marking the
// entry busy for the duration.
func entryOpCmd(store *track.Store, entryID string, op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store.SetBusy(entryID, true)
		err := op(ctx)
		store.SetBusy(entryID, false)

		if err != nil && isConnectionLost(err) {
			return DaemonDisconnectedMsg{}
		}
		return EntryOpDoneMsg{Err: err}
	}
}

func saveEntryCmd(store *track.Store, entryID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store.SetBusy(entryID, true)
		// A saved draft adopts the daemon-assigned id, so the busy flag
		// must be cleared against the id Save reports back.
		savedID, err := store.Save(ctx, entryID)
		store.SetBusy(savedID, false)

		if err != nil && isConnectionLost(err) {
			return DaemonDisconnectedMsg{}
		}
		return EntrySavedMsg{EntryID: savedID, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}

// isConnectionLost checks if a gRPC error indicates the daemon is gone.
func isConnectionLost(err error) bool {
	code := status.Code(err)
	return code == codes.Unavailable || code == codes.Canceled
}
