package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Materials_Go/internal/database"
)

// Stopper is a component that stops gracefully within a context deadline
type Stopper interface {
	Stop(ctx context.Context) error
}

// Halter is a background component that stops synchronously
type Halter interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	// Events ends open event streams; they would otherwise hold the server open
	Events  Halter
	Server  Stopper
	Workers []Halter      // stopped in order after the server
	DBPool  database.Pool // optional
}

// GracefulShutdown closes event streams, then stops the HTTP server and background
// workers so no request or job runs against a closed pool.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Events != nil {
		components.Events.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for _, w := range components.Workers {
		if w != nil {
			w.Stop()
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
