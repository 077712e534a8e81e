package signal

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetupSignalHandler_SIGINTCancelsContext verifies that SIGINT runs the
// callback and then cancels the context.
func TestSetupSignalHandler_SIGINTCancelsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var called atomic.Bool
	var cancelledBeforeCallback atomic.Bool
	stop := SetupSignalHandler(ctx, cancel, func() {
		cancelledBeforeCallback.Store(ctx.Err() != nil)
		called.Store(true)
	})
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT), "failed to send SIGINT")

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after SIGINT")
	}
	assert.True(t, called.Load())
	assert.False(t, cancelledBeforeCallback.Load(), "callback runs before cancellation")
}

// TestSetupSignalHandler_SIGTERMCancelsContext verifies SIGTERM is handled
// the same way as SIGINT.
func TestSetupSignalHandler_SIGTERMCancelsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := SetupSignalHandler(ctx, cancel, nil)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM), "failed to send SIGTERM")

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after SIGTERM")
	}
}

// TestSetupSignalHandler_ContextCancellation verifies that cancelling the
// context without a signal does not run the callback.
func TestSetupSignalHandler_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var called atomic.Bool
	stop := SetupSignalHandler(ctx, cancel, func() { called.Store(true) })
	defer stop()

	cancel()
	time.Sleep(50 * time.Millisecond)

	assert.False(t, called.Load(), "onInterrupt must not run without a signal")
}

// TestSetupSignalHandler_StopIsIdempotent verifies the stop function can be
// called more than once.
func TestSetupSignalHandler_StopIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := SetupSignalHandler(ctx, cancel, nil)
	assert.NotPanics(t, func() {
		stop()
		stop()
	})
}
