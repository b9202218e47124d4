package domain

import "os"

// ReactionKind discriminates the two reaction variants.
type ReactionKind uint8

const (
	// ReactSignal re-signals the current process.
	ReactSignal ReactionKind = iota
	// ReactCallback invokes a user callback with the change set.
	ReactCallback
)

// Reaction is the action taken when changed files are found: either an OS
// signal raised against the current process, or a callback invoked with the
// change set. The zero value is not valid; use SignalReaction or
// CallbackReaction.
type Reaction struct {
	kind     ReactionKind
	signal   os.Signal
	name     string
	callback func(ChangeSet)
}

// SignalReaction builds a reaction that raises sig. The name is used in the
// verbosity message.
func SignalReaction(sig os.Signal, name string) Reaction {
	return Reaction{kind: ReactSignal, signal: sig, name: name}
}

// CallbackReaction builds a reaction that invokes fn with the change set.
// The callback's return value, if any, is discarded by the caller.
func CallbackReaction(name string, fn func(ChangeSet)) Reaction {
	return Reaction{kind: ReactCallback, name: name, callback: fn}
}

// Kind returns the reaction variant.
func (r Reaction) Kind() ReactionKind { return r.kind }

// Signal returns the signal to raise. Only meaningful for ReactSignal.
func (r Reaction) Signal() os.Signal { return r.signal }

// Name returns the display name of the signal or callback.
func (r Reaction) Name() string { return r.name }

// Invoke calls the reaction callback. Only meaningful for ReactCallback.
func (r Reaction) Invoke(changed ChangeSet) {
	if r.callback != nil {
		r.callback(changed)
	}
}

// VerbosityKind discriminates the verbosity variants.
type VerbosityKind uint8

const (
	// VerbosityOff suppresses the message entirely.
	VerbosityOff VerbosityKind = iota
	// VerbosityPrint emits the message through the configured logger.
	VerbosityPrint
	// VerbosityCallback hands the message to a user callback.
	VerbosityCallback
)

// Verbosity controls whether and how the hook announces the action it is
// about to take. The zero value is VerbosityOff.
type Verbosity struct {
	kind     VerbosityKind
	callback func(string)
}

// VerboseOff returns the silent verbosity.
func VerboseOff() Verbosity { return Verbosity{} }

// VerbosePrint returns the verbosity that emits through the logger.
func VerbosePrint() Verbosity { return Verbosity{kind: VerbosityPrint} }

// VerboseFunc returns the verbosity that hands the message to fn.
func VerboseFunc(fn func(string)) Verbosity {
	return Verbosity{kind: VerbosityCallback, callback: fn}
}

// Kind returns the verbosity variant.
func (v Verbosity) Kind() VerbosityKind { return v.kind }

// Emit delivers the message to the callback. Only meaningful for
// VerbosityCallback.
func (v Verbosity) Emit(message string) {
	if v.callback != nil {
		v.callback(message)
	}
}
