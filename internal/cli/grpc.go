package cli

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/timetrack-io/timetrack/internal/config"
	"github.com/timetrack-io/timetrack/internal/rpc"
)

// connectDaemon establishes a gRPC connection to the running daemon.
func connectDaemon() (*grpc.ClientConn, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load daemon info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("daemon not running")
	}

	addr := fmt.Sprintf("%s:%d", info.Host, info.Port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w", err)
	}

	return conn, nil
}

// daemonClient connects and wraps the connection in an entry client. The
// returned close func must be called when done.
func daemonClient() (*rpc.Client, func(), error) {
	conn, err := connectDaemon()
	if err != nil {
		return nil, nil, err
	}
	return rpc.NewClient(conn), func() { _ = conn.Close() }, nil
}
