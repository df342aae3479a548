package conformance

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsTerminal reports whether stdout is attached to a terminal, so the
// conformance CLI prints FAIL in colour only when it is.
func IsTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdout.Fd()), unix.TCGETS)
	return err == nil
}
