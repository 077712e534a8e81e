// Package signal turns SIGINT and SIGTERM into context cancellation, so an
// interrupted sync stops prompting and still writes the values accepted so far.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls the onInterrupt callback (if non-nil),
// then cancels the context.
//
// Only the first signal is intercepted: after it, default handling is
// restored so a second Ctrl-C terminates the process immediately.
//
// The returned stop function unregisters the handlers; it is safe to call
// more than once.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	stop := signal.SetupSignalHandler(ctx, cancel, func() {
//	    logging.Warn("Interrupted, writing accepted values...")
//	})
//	defer stop()
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			signal.Stop(sigCh)
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
			signal.Stop(sigCh)
		}
	}()

	return func() { signal.Stop(sigCh) }
}
