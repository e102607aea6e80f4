package cli

import (
	"errors"
	"fmt"
)

var (
	ErrOptionBinding      = errors.New("option value rejected")
	ErrMissingValue       = errors.New("missing option value")
	ErrUnknownOption      = errors.New("unknown option")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrDuplicateOption    = errors.New("duplicate option name")
	ErrDuplicateCommand   = errors.New("invalid command keyword")
)

const (
	ExitOK      = 0 // ExitOK is returned when a command completes, or help/version information was shown.
	ExitFailure = 1 // ExitFailure is returned when the arguments couldn't be parsed, or a PreExec failed.
)

// ParseError is returned when the argument vector can't be bound to a command tree.
// It names the command that was being dispatched, and the offending token.
//
// Any ParseError matches another with [errors.Is], and the wrapped error identifies the kind of failure, e.g. [ErrUnknownOption].
type ParseError struct {
	Command string
	Token   string
	wrapped error
	cmd     *Command
}

func (e *ParseError) Error() string {
	if e.wrapped == nil {
		return "parse error"
	}
	if len(e.Token) == 0 {
		return fmt.Sprintf("%s: %s", e.Command, e.wrapped.Error())
	}
	return fmt.Sprintf("%s: %s '%s'", e.Command, e.wrapped.Error(), e.Token)
}

func (e *ParseError) Is(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

func (e *ParseError) Unwrap() error {
	return e.wrapped
}

func newParseError(cmd *Command, token string, err error) error {
	return &ParseError{
		Command: cmd.Path(),
		Token:   token,
		wrapped: err,
		cmd:     cmd,
	}
}
