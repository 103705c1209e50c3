// Package server implements the gRPC server for the daemon.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/timetrack-io/timetrack/internal/daemon/entry"
	"github.com/timetrack-io/timetrack/internal/daemon/tray"
	"github.com/timetrack-io/timetrack/internal/rpc"
)

// Server is the daemon's gRPC server.
type Server struct {
	grpcServer   *grpc.Server
	listener     net.Listener
	port         int
	entryManager *entry.Manager
	updateState  UpdateState
}

// New creates a new server listening on the specified port, serving entries
// from dataDir. Pass port 0 for dynamic allocation.
func New(port int, dataDir string) (*Server, error) {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port

	grpcServer := grpc.NewServer()
	entryMgr := entry.NewManager(dataDir)

	srv := &Server{
		grpcServer:   grpcServer,
		listener:     listener,
		port:         actualPort,
		entryManager: entryMgr,
	}

	rpc.RegisterTimetrackServiceServer(grpcServer, &timetrackService{manager: entryMgr})

	srv.startUpdateCheck()

	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// EntryManager returns the entry manager.
func (s *Server) EntryManager() *entry.Manager {
	return s.entryManager
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	return s.grpcServer.Serve(s.listener)
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

// TrayState adapts a Server to the tray.DaemonState interface.
type TrayState struct {
	srv *Server
}

// NewTrayState creates a TrayState for the given server.
func NewTrayState(srv *Server) *TrayState {
	return &TrayState{srv: srv}
}

// Port returns the port the server is listening on.
func (t *TrayState) Port() int {
	return t.srv.Port()
}

// RunningEntry returns the running entry's tray info, or nil.
func (t *TrayState) RunningEntry() *tray.EntryInfo {
	e, err := t.srv.entryManager.RunningEntry()
	if err != nil || e == nil {
		return nil
	}
	duration := e.DurationMillis
	if e.StopwatchStart != nil {
		duration += time.Since(*e.StopwatchStart).Milliseconds()
	}
	return &tray.EntryInfo{
		ID:             e.ID,
		Name:           e.Name,
		DurationMillis: duration,
	}
}

// StopRunning stops the running entry, if any.
func (t *TrayState) StopRunning() {
	e, err := t.srv.entryManager.RunningEntry()
	if err != nil || e == nil {
		return
	}
	_, _ = t.srv.entryManager.StopEntry(e.ID, time.Now())
}

// RequestShutdown sends SIGINT to the current process to trigger a graceful shutdown.
func (t *TrayState) RequestShutdown() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(syscall.SIGINT)
}
