// Package main is the entry point for the timetrackd daemon.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/daemon/server"
	"github.com/timetrack-io/timetrack/internal/daemon/tray"
	"github.com/timetrack-io/timetrack/internal/daemon/watcher"
	"github.com/timetrack-io/timetrack/internal/models"
)

func main() {
	// Parse flags
	foreground := flag.Bool("foreground", false, "Run in foreground (for development)")
	port := flag.Int("port", 0, "Port to listen on (0 for dynamic allocation)")
	dataDir := flag.String("data-dir", "", "Data directory (defaults to ~/.timetrack)")
	flag.Parse()

	log.SetPrefix("[timetrackd] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	if *dataDir == "" {
		dir, err := config.GlobalDir()
		if err != nil {
			log.Fatalf("Failed to resolve data directory: %v", err)
		}
		*dataDir = dir
	}
	if err := config.EnsureDataDir(*dataDir); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running on port %d (PID %d)", info.Port, info.PID)
	}

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(*port, *dataDir)
	} else {
		log.Println("Running in background mode (with system tray)")
		runWithTray(*port, *dataDir)
	}
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(port int, dataDir string) {
	srv, err := server.New(port, dataDir)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	daemonInfo := models.NewDaemonInfo("localhost", srv.Port(), os.Getpid())
	if err := config.SaveDaemonInfo(daemonInfo); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}

	log.Printf("Daemon started on port %d (PID %d)", srv.Port(), os.Getpid())

	w := startWatcher(dataDir, nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	srv.Stop()
	if w != nil {
		w.Stop()
	}

	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}

	fmt.Println("Daemon stopped")
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(port int, dataDir string) {
	var srv *server.Server
	var w *watcher.Watcher
	trayDone := make(chan struct{})

	onStart := func() {
		var err error
		srv, err = server.New(port, dataDir)
		if err != nil {
			log.Fatalf("Failed to create server: %v", err)
		}

		daemonInfo := models.NewDaemonInfo("localhost", srv.Port(), os.Getpid())
		if err := config.SaveDaemonInfo(daemonInfo); err != nil {
			log.Fatalf("Failed to write daemon info: %v", err)
		}

		log.Printf("Daemon started on port %d (PID %d)", srv.Port(), os.Getpid())

		state := server.NewTrayState(srv)
		refresh := func() {
			tray.UpdateRunning(state.RunningEntry())
		}

		w = startWatcher(dataDir, refresh)

		// Keep the tray elapsed time ticking while an entry runs.
		go func() {
			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-trayDone:
					return
				case <-ticker.C:
					refresh()
				}
			}
		}()

		// Serve gRPC in background
		go func() {
			if err := srv.Serve(); err != nil {
				log.Printf("Server error: %v", err)
				tray.Quit()
			}
		}()

		// Handle OS signals, quitting the tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		close(trayDone)
		if srv != nil {
			srv.Stop()
		}
		if w != nil {
			w.Stop()
		}

		if err := config.RemoveDaemonInfo(); err != nil {
			log.Printf("Failed to remove daemon info: %v", err)
		}

		fmt.Println("Daemon stopped")
	}

	// We need a DaemonState before the server is created, so we use a
	// lazy wrapper that defers to the real TrayState once the server exists.
	lazyState := &lazyDaemonState{getSrv: func() *server.Server { return srv }}

	// This blocks the main goroutine until tray exits.
	tray.Run(lazyState, onStart, onExit)
}

// startWatcher watches the data directory for external changes. onChange, when
// non-nil, runs after every entry-affecting event.
func startWatcher(dataDir string, onChange func()) *watcher.Watcher {
	w, err := watcher.New(dataDir)
	if err != nil {
		log.Printf("Failed to create watcher: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Printf("Failed to start watcher: %v", err)
		return nil
	}

	go func() {
		for ev := range w.Events() {
			switch ev.Type {
			case watcher.EventEntryChanged, watcher.EventEntryCreated, watcher.EventEntryDeleted:
				log.Printf("Entry file changed externally: %s", ev.Path)
				if onChange != nil {
					onChange()
				}
			case watcher.EventCategoriesChanged:
				log.Printf("Categories file changed externally")
			case watcher.EventSettingsChanged:
				log.Printf("Settings file changed externally")
			}
		}
	}()

	return w
}

// lazyDaemonState wraps server.TrayState with lazy initialization.
// The server is nil at tray startup and created inside onStart.
type lazyDaemonState struct {
	getSrv func() *server.Server
}

func (l *lazyDaemonState) Port() int {
	if srv := l.getSrv(); srv != nil {
		return server.NewTrayState(srv).Port()
	}
	return 0
}

func (l *lazyDaemonState) RunningEntry() *tray.EntryInfo {
	if srv := l.getSrv(); srv != nil {
		return server.NewTrayState(srv).RunningEntry()
	}
	return nil
}

func (l *lazyDaemonState) StopRunning() {
	if srv := l.getSrv(); srv != nil {
		server.NewTrayState(srv).StopRunning()
	}
}

func (l *lazyDaemonState) RequestShutdown() {
	if srv := l.getSrv(); srv != nil {
		server.NewTrayState(srv).RequestShutdown()
	}
}
