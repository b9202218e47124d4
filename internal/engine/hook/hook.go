// Package hook ties change detection to an OS notification signal.
package hook

import (
	"fmt"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/tracker"
)

// Hook installs a signal handler that checks the tracked files and reacts
// when any of them changed.
type Hook struct {
	tracker *tracker.Tracker
	signals ports.SignalDispatcher
	logger  ports.Logger
}

// New creates a hook over the given tracker and signal dispatcher.
func New(tr *tracker.Tracker, signals ports.SignalDispatcher, logger ports.Logger) *Hook {
	return &Hook{tracker: tr, signals: signals, logger: logger}
}

type options struct {
	trigger      string
	reactionSpec string
	reactionName string
	reactionFn   func(domain.ChangeSet)
	verbosity    domain.Verbosity
}

// Option configures Install.
type Option func(*options)

// WithTrigger sets the signal specifier the hook listens for. Default SIGHUP.
func WithTrigger(spec string) Option {
	return func(o *options) { o.trigger = spec }
}

// WithReaction sets the signal specifier raised when tracked files changed.
// Default SIGTERM.
func WithReaction(spec string) Option {
	return func(o *options) {
		o.reactionSpec = spec
		o.reactionFn = nil
	}
}

// WithReactionFunc replaces the reaction signal with a callback that receives
// the changed files. The name is used in the verbosity message; the
// callback's return value is discarded.
func WithReactionFunc(name string, fn func(domain.ChangeSet)) Option {
	return func(o *options) {
		o.reactionName = name
		o.reactionFn = fn
	}
}

// WithVerbose announces the action through the logger before reacting.
func WithVerbose() Option {
	return func(o *options) { o.verbosity = domain.VerbosePrint() }
}

// WithVerboseFunc hands the announcement to fn instead of the logger.
func WithVerboseFunc(fn func(string)) Option {
	return func(o *options) { o.verbosity = domain.VerboseFunc(fn) }
}

// Install resolves the trigger and reaction, establishes the baseline if no
// scan has run yet, and registers the handler. An unresolvable signal
// specifier fails here, atomically: nothing is registered. Installing again
// for the same trigger replaces the previous handler.
func (h *Hook) Install(opts ...Option) error {
	o := options{
		trigger:      domain.DefaultTrigger,
		reactionSpec: domain.DefaultReaction,
	}
	for _, opt := range opts {
		opt(&o)
	}

	trigger, err := h.signals.Resolve(o.trigger)
	if err != nil {
		return err
	}

	var reaction domain.Reaction
	if o.reactionFn != nil {
		reaction = domain.CallbackReaction(o.reactionName, o.reactionFn)
	} else {
		sig, err := h.signals.Resolve(o.reactionSpec)
		if err != nil {
			return err
		}
		reaction = domain.SignalReaction(sig, h.signals.SignalName(sig))
	}

	// Baseline the world before listening, not on first delivery.
	h.tracker.Track()

	h.signals.Subscribe(trigger, func() {
		h.check(reaction, o.verbosity)
	})
	return nil
}

// check runs on signal delivery. An empty change set means no reaction and
// no message.
func (h *Hook) check(reaction domain.Reaction, verbosity domain.Verbosity) {
	changed := h.tracker.Modified()
	if len(changed) == 0 {
		return
	}

	h.announce(reaction, verbosity, changed)

	if reaction.Kind() == domain.ReactCallback {
		reaction.Invoke(changed)
		return
	}
	if err := h.signals.Raise(reaction.Signal()); err != nil {
		// Delivery context has no caller to return to.
		h.logger.Error(err)
	}
}

func (h *Hook) announce(reaction domain.Reaction, verbosity domain.Verbosity, changed domain.ChangeSet) {
	if verbosity.Kind() == domain.VerbosityOff {
		return
	}

	verb := "Sending"
	if reaction.Kind() == domain.ReactCallback {
		verb = "Calling"
	}
	message := fmt.Sprintf("%s %s because %s changed.", verb, reaction.Name(), summarize(changed))

	switch verbosity.Kind() {
	case domain.VerbosityPrint:
		h.logger.Info(message)
	case domain.VerbosityCallback:
		verbosity.Emit(message)
	}
}

// summarize names the first changed file plus a count of the remaining ones.
func summarize(changed domain.ChangeSet) string {
	rest := len(changed) - 1
	switch {
	case rest <= 0:
		return changed[0]
	case rest == 1:
		return changed[0] + " and 1 other file"
	default:
		return fmt.Sprintf("%s and %d other files", changed[0], rest)
	}
}
