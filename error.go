package gobble

import (
	"errors"
	"fmt"

	"github.com/gobble-go/gobble/location"
)

// Error is the single failure type produced by parsers.
//
// It carries the position the failure occurred at and an unadorned message. Whether a failure is
// recoverable is decided by the combinator that receives it, not by the error itself.
type Error struct {
	Msg string
	Pos location.Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos location.Position, format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an *Error it will be returned unmodified.
func AnnotateError(pos location.Position, err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return &Error{Msg: err.Error(), Pos: pos}
}

// FormatError formats an error in the form "[<filename>:]<line>:<col>: <message>"
func FormatError(pos location.Position, message string) string {
	return pos.String() + ": " + message
}

func (e *Error) Error() string { return FormatError(e.Pos, e.Msg) }

// Message returns the unadorned message.
func (e *Error) Message() string { return e.Msg }

// Position the error occurred at.
func (e *Error) Position() location.Position { return e.Pos }
