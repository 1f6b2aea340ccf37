package gobble

import (
	"errors"
	"io"
)

// An Option to modify the behaviour of a parse.
type Option func(src *Source) error

// Filename is an Option that sets the filename reported in error positions.
func Filename(filename string) Option {
	return func(src *Source) error {
		src.filename = filename
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(src *Source) error {
		if w == nil {
			return errors.New("trace writer must not be nil")
		}
		src.trace = &tracer{w: w}
		return nil
	}
}
