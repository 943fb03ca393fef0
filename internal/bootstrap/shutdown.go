package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/SpinForge_Go/internal/event"
	"github.com/osse101/SpinForge_Go/internal/server"
)

// ShutdownComponents holds what was started; nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
}

type shutdownStage struct {
	announce string
	failed   string
	run      func(context.Context) error
}

// GracefulShutdown stops the HTTP server, then flushes pending events, then
// closes storage. A failing stage is logged and the rest still run; the
// failures come back joined.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) error {
	var stages []shutdownStage
	if c.Server != nil {
		stages = append(stages, shutdownStage{LogMsgShuttingDownServer, LogMsgServerForcedShutdown, c.Server.Stop})
	}
	if c.ResilientPublisher != nil {
		stages = append(stages, shutdownStage{LogMsgShuttingDownEventPublisher, LogMsgResilientPublisherFailed, c.ResilientPublisher.Shutdown})
	}
	if c.Repositories != nil {
		stages = append(stages, shutdownStage{LogMsgClosingStorage, "", func(context.Context) error {
			c.Repositories.Close()
			return nil
		}})
	}

	var errs []error
	for _, st := range stages {
		slog.Info(st.announce)
		if err := st.run(ctx); err != nil {
			slog.Error(st.failed, "error", err)
			errs = append(errs, err)
		}
	}
	slog.Info(LogMsgServerStopped)
	return errors.Join(errs...)
}
