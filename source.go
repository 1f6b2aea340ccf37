package gobble

import (
	"github.com/gobble-go/gobble/location"
)

// Source is the immutable input of a single parse.
//
// A Source with tracing enabled carries the trace depth and must not be shared between goroutines.
type Source struct {
	filename string
	text     []rune
	table    *location.Table
	trace    *tracer
}

// NewSource prepares text for parsing.
func NewSource(text string, options ...Option) (*Source, error) {
	src := &Source{text: []rune(text)}
	for _, option := range options {
		if err := option(src); err != nil {
			return nil, err
		}
	}
	src.table = location.NewTable(src.filename, src.text)
	return src, nil
}

// Filename of the source, if any.
func (s *Source) Filename() string { return s.filename }

// Len returns the number of elements in the source.
func (s *Source) Len() int { return len(s.text) }

// At returns the element at index.
func (s *Source) At(index int) rune { return s.text[index] }

// Slice returns the elements in [start, end) as a string, clamping end to the source length.
func (s *Source) Slice(start, end int) string {
	if end > len(s.text) {
		end = len(s.text)
	}
	if start > end {
		start = end
	}
	return string(s.text[start:end])
}

// Position of index in the source.
func (s *Source) Position(index int) location.Position {
	return s.table.Position(index)
}

func (s *Source) errorf(index int, format string, args ...interface{}) *Error {
	return Errorf(s.Position(index), format, args...)
}
