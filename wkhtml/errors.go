package wkhtml

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// ErrBinaryMissing flags an unresolvable wkhtmltopdf binary.
var ErrBinaryMissing = errors.New("wkhtml: wkhtmltopdf binary not found")

// RunError describes a failed wkhtmltopdf run: either the process exited
// with an error code, or it was killed by a signal.
type RunError struct {
	Code   int            // exit code, meaningful when Signal is zero
	Signal syscall.Signal // terminating signal when the renderer crashed
	Stderr string         // tail of the renderer's stderr output
}

// Crashed reports whether the renderer was killed by a signal instead of
// exiting on its own.
func (e *RunError) Crashed() bool {
	return e.Signal != 0
}

func (e *RunError) Error() string {
	var b strings.Builder
	if e.Crashed() {
		fmt.Fprintf(&b, "wkhtml: renderer crashed with signal %d (%v)", int(e.Signal), e.Signal)
		if e.Signal == syscall.SIGSEGV {
			b.WriteString("; memory limit too low or file-descriptor limit reached")
		}
	} else {
		fmt.Fprintf(&b, "wkhtml: renderer failed with exit code %d", e.Code)
	}
	if e.Stderr != "" {
		fmt.Fprintf(&b, ": %s", e.Stderr)
	}
	return b.String()
}
