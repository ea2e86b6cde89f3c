package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSelection is returned when a choice step is committed empty.
	ErrNoSelection = errors.New("a selection is required")
	// ErrUnknownOption is returned when a choice is not among the options.
	ErrUnknownOption = errors.New("not one of the available options")
	// ErrEmptyToken is returned when the token step is committed empty.
	ErrEmptyToken = errors.New("a token is required")
	// ErrEmptyOutputDir is returned when no output directory is given.
	ErrEmptyOutputDir = errors.New("an output directory is required")
	// ErrTerminal is returned for any action after the wizard has ended.
	ErrTerminal = errors.New("wizard has finished")
	// ErrUnexpectedAction is returned when a step does not accept an action.
	ErrUnexpectedAction = errors.New("action not accepted at this step")
)

// RejectedError reports a transition that was refused. The machine is left
// unchanged. Field names the offending input, if any.
type RejectedError struct {
	Step  Step
	Field string
	Err   error
}

func (e *RejectedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *RejectedError) Unwrap() error { return e.Err }
