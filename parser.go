package gobble

import (
	"sync"
)

// A Parser maps a position in a Source to either a value and the index following it, or an error.
//
// Parsers are immutable once built and may be shared between grammars and goroutines.
type Parser[T any] struct {
	name string
	step func(src *Source, index int) (T, int, error)
}

// New constructs a Parser directly from a step function.
//
// The step must not advance past the end of src, and on failure must return an error; the returned
// index is ignored in that case. The name is for diagnostics only.
func New[T any](name string, step func(src *Source, index int) (T, int, error)) *Parser[T] {
	return &Parser[T]{name: name, step: step}
}

// Lazy returns a Parser that defers to the parser returned by resolve, which is called once on
// first use.
//
// This is how recursive grammars refer to productions that are not yet built.
func Lazy[T any](name string, resolve func() *Parser[T]) *Parser[T] {
	var (
		once   sync.Once
		target *Parser[T]
	)
	return New(name, func(src *Source, index int) (T, int, error) {
		once.Do(func() { target = resolve() })
		return target.Parse(src, index)
	})
}

func (p *Parser[T]) String() string { return p.name }

// Parse src starting at index.
func (p *Parser[T]) Parse(src *Source, index int) (T, int, error) {
	if src.trace != nil {
		return traceParse(p, src, index)
	}
	return p.step(src, index)
}

// Execute the parser against input, forbidding residue.
//
// That is, if the parser does not consume the entire input, it is an error.
func (p *Parser[T]) Execute(input string, options ...Option) (T, error) {
	src, err := NewSource(input, options...)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.ExecuteSource(src)
}

// ExecuteSource is like Execute but parses an existing Source.
func (p *Parser[T]) ExecuteSource(src *Source) (T, error) {
	var zero T
	value, next, err := p.Parse(src, 0)
	if err != nil {
		return zero, err
	}
	if next != src.Len() {
		return zero, src.errorf(next, "partial parse, residue is %q", src.Slice(next, src.Len()))
	}
	return value, nil
}

// Execute parser against input.
func Execute[T any](parser *Parser[T], input string, options ...Option) (T, error) {
	return parser.Execute(input, options...)
}
