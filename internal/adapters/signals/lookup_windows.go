//go:build windows

package signals

import (
	"os"
	"syscall"
)

// Windows only delivers a small set of signals to console processes.
var windowsSignals = map[string]syscall.Signal{
	"SIGHUP":  syscall.SIGHUP,
	"SIGINT":  syscall.SIGINT,
	"SIGQUIT": syscall.SIGQUIT,
	"SIGILL":  syscall.SIGILL,
	"SIGTRAP": syscall.SIGTRAP,
	"SIGABRT": syscall.SIGABRT,
	"SIGBUS":  syscall.SIGBUS,
	"SIGFPE":  syscall.SIGFPE,
	"SIGKILL": syscall.SIGKILL,
	"SIGSEGV": syscall.SIGSEGV,
	"SIGPIPE": syscall.SIGPIPE,
	"SIGALRM": syscall.SIGALRM,
	"SIGTERM": syscall.SIGTERM,
}

// lookupSignal resolves a "SIG*" name to its platform signal.
func lookupSignal(name string) (os.Signal, bool) {
	sig, ok := windowsSignals[name]
	if !ok {
		return nil, false
	}
	return sig, true
}

// signalName returns the "SIG*" name for sig, or "" if the platform does not
// know it.
func signalName(sig os.Signal) string {
	num, ok := sig.(syscall.Signal)
	if !ok {
		return ""
	}
	for name, candidate := range windowsSignals {
		if candidate == num {
			return name
		}
	}
	return ""
}
