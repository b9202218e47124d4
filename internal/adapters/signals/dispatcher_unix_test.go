//go:build unix

package signals_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/signals"
)

// waitForCall fails the test if the channel does not receive in time.
func waitForCall(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestDispatcher_SubscribeAndRaise(t *testing.T) {
	d := signals.NewDispatcher()
	t.Cleanup(func() { d.Unsubscribe(syscall.SIGUSR1) })

	called := make(chan struct{}, 1)
	d.Subscribe(syscall.SIGUSR1, func() {
		called <- struct{}{}
	})

	require.NoError(t, d.Raise(syscall.SIGUSR1))
	waitForCall(t, called)
}

func TestDispatcher_Resubscribe_LastWins(t *testing.T) {
	d := signals.NewDispatcher()
	t.Cleanup(func() { d.Unsubscribe(syscall.SIGUSR2) })

	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)

	d.Subscribe(syscall.SIGUSR2, func() { first <- struct{}{} })
	d.Subscribe(syscall.SIGUSR2, func() { second <- struct{}{} })

	require.NoError(t, d.Raise(syscall.SIGUSR2))
	waitForCall(t, second)

	select {
	case <-first:
		t.Fatal("replaced handler was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}
