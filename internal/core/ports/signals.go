package ports

import "os"

// SignalDispatcher abstracts signal resolution, registration and delivery
// against the current process.
//
//go:generate mockgen -source=signals.go -destination=mocks/mock_signals.go -package=mocks
type SignalDispatcher interface {
	// Resolve maps a signal specifier to a concrete OS signal. Specifiers may
	// be numeric ("15"), symbolic ("TERM") or prefixed symbolic ("SIGTERM"),
	// case-insensitive. An unresolvable specifier returns
	// domain.ErrInvalidSignalName.
	Resolve(spec string) (os.Signal, error)

	// SignalName returns the conventional "SIG*" name for a signal, or its
	// numeric form when no name is known.
	SignalName(sig os.Signal) string

	// Subscribe registers fn to run whenever trigger is delivered to the
	// process. Signal APIs are single-handler-per-signal: subscribing again
	// for the same trigger replaces the previous registration.
	Subscribe(trigger os.Signal, fn func())

	// Raise delivers sig to the current process.
	Raise(sig os.Signal) error
}
