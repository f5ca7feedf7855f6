package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RaidCompanion_Go/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown
type ShutdownComponents struct {
	Server       *server.Server
	Background   *Background
	Repositories *Repositories
}

// GracefulShutdown stops the HTTP server first so in-flight requests finish
// against an open pool, then background jobs, then closes storage.
// Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	components.Background.Stop()

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}
