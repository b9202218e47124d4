// Package signals implements the SignalDispatcher port over os/signal.
package signals

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SignalDispatcher = (*Dispatcher)(nil)

// invalidSignal builds the resolution error with the sentinel as the root
// cause, so errors.Is keeps matching after metadata is attached.
func invalidSignal(spec string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidSignalName, "resolve signal"), "signal", spec)
}

// subscription owns one delivery channel and the goroutine draining it.
type subscription struct {
	ch   chan os.Signal
	done chan struct{}
}

// Dispatcher resolves signal specifiers and routes inbound signals to
// registered handlers. It keeps at most one active handler per trigger
// signal; subscribing again replaces the previous registration.
type Dispatcher struct {
	mu   sync.Mutex
	subs map[os.Signal]*subscription
}

// NewDispatcher creates a new signal dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[os.Signal]*subscription)}
}

// Resolve maps a specifier to a concrete signal. Accepted forms: a signal
// number ("15"), a bare name ("TERM", "term") or a prefixed name ("SIGTERM").
func (d *Dispatcher) Resolve(spec string) (os.Signal, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, invalidSignal(spec)
	}

	if num, err := strconv.Atoi(trimmed); err == nil {
		sig := syscall.Signal(num)
		if num <= 0 || signalName(sig) == "" {
			return nil, invalidSignal(spec)
		}
		return sig, nil
	}

	name := strings.ToUpper(trimmed)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	sig, ok := lookupSignal(name)
	if !ok {
		return nil, invalidSignal(spec)
	}
	return sig, nil
}

// SignalName returns the conventional "SIG*" name for sig, falling back to
// its numeric form when the platform has no name for it.
func (d *Dispatcher) SignalName(sig os.Signal) string {
	if name := signalName(sig); name != "" {
		return name
	}
	if num, ok := sig.(syscall.Signal); ok {
		return strconv.Itoa(int(num))
	}
	return sig.String()
}

// Subscribe registers fn for trigger, replacing any previous registration.
// fn runs on the delivery goroutine; anything it does, including filesystem
// stats, blocks further deliveries of the same trigger.
func (d *Dispatcher) Subscribe(trigger os.Signal, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.subs[trigger]; ok {
		signal.Stop(prev.ch)
		close(prev.done)
	}

	sub := &subscription{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(sub.ch, trigger)
	d.subs[trigger] = sub

	go func() {
		for {
			select {
			case <-sub.ch:
				fn()
			case <-sub.done:
				return
			}
		}
	}()
}

// Unsubscribe removes the handler for trigger, if any.
func (d *Dispatcher) Unsubscribe(trigger os.Signal) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sub, ok := d.subs[trigger]; ok {
		signal.Stop(sub.ch)
		close(sub.done)
		delete(d.subs, trigger)
	}
}

// Raise delivers sig to the current process.
func (d *Dispatcher) Raise(sig os.Signal) error {
	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		return deliveryFailed(err, d.SignalName(sig))
	}
	if err := proc.Signal(sig); err != nil {
		return deliveryFailed(err, d.SignalName(sig))
	}
	return nil
}

func deliveryFailed(err error, name string) error {
	return zerr.With(zerr.Wrap(domain.ErrSignalDeliveryFailed, err.Error()), "signal", name)
}
