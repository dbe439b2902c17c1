package infra

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Graceful blocks until ctx is done, then runs every callback in order with a
// fresh context bounded by timeout. All callbacks run even if one fails.
func Graceful(ctx context.Context, timeout time.Duration, cb ...func(context.Context) error) error {
	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs error
	for _, f := range cb {
		errs = multierr.Append(errs, f(shutdownCtx))
	}
	if errs != nil {
		slog.Error("shutdown finished with errors", "error", errs)
		return errs
	}
	slog.Info("shutdown complete")
	return nil
}
