package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthgen/internal/ui/theme"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = 2
)

// ExitError asks main to exit with Code. The status line has already been
// printed when Err is nil.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitWith(code int) error {
	return &ExitError{Code: code}
}

func statusOK(w io.Writer, msg string) {
	printStatus(w, theme.StatusOK, "✔ "+msg)
}

func statusWarn(w io.Writer, msg string) {
	printStatus(w, theme.StatusWarn, msg)
}

func statusFail(w io.Writer, msg string) {
	printStatus(w, theme.StatusFail, msg)
}

func printStatus(w io.Writer, style lipgloss.Style, msg string) {
	fmt.Fprintln(w, style.Render(msg))
}
