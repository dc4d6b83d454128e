//go:build unix

package playgroundcli

import "syscall"

func init() {
	// Ctrl+Z shuts the server down instead of leaving it suspended with the
	// port still bound.
	shutdownSignals = append(shutdownSignals, syscall.SIGTSTP)
}
