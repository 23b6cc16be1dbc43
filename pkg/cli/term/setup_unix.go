//go:build unix

package term

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"
)

// Raw tracks the terminal's raw-mode state. Raw mode is a scoped resource:
// Restore must run on every exit path of the interactive loop so the
// terminal never leaks raw state into the parent process.
type Raw struct {
	fd    int
	saved *xterm.State
}

// Setup puts the terminal in raw mode. Among other things this disables
// ICRNL (Enter arrives as CR), OPOST (output needs explicit CR), and ISIG
// (Ctrl+C arrives as a plain keycode).
func Setup(f *os.File) (*Raw, error) {
	fd := int(f.Fd())
	saved, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return &Raw{fd, saved}, nil
}

// Restore returns the terminal to the mode it was in before Setup. It is
// idempotent enough to be deferred and also called early.
func (r *Raw) Restore() error {
	return xterm.Restore(r.fd, r.saved)
}

// Suspend restores the original terminal mode for the duration of body,
// typically around running an external command, then re-enters raw mode.
func (r *Raw) Suspend(body func() error) error {
	if err := r.Restore(); err != nil {
		return err
	}
	defer xterm.MakeRaw(r.fd)
	return body()
}
