//go:build unix

package signals

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// lookupSignal resolves a "SIG*" name to its platform signal.
func lookupSignal(name string) (os.Signal, bool) {
	sig := unix.SignalNum(name)
	if sig == 0 {
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
	return unix.SignalName(num)
}
