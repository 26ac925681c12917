package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM, or when the
// returned cancel func is called.
func WithSignals(parent context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
		case sig := <-ch:
			log.Warn("interrupted", slog.String("signal", sig.String()))
			cancel()
		}
	}()

	return ctx, cancel
}
