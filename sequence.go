package gobble

import (
	"fmt"
)

// Seq is the state of a Sequence body in progress: the source and the index reached so far.
type Seq struct {
	src   *Source
	index int
}

// Source being parsed.
func (s *Seq) Source() *Source { return s.src }

// Index reached by the steps run so far.
func (s *Seq) Index() int { return s.index }

// Run parser p at the current index of the sequence.
//
// On success the sequence advances past the match and the value is returned. On failure the index
// is left where it was and the error is returned for the body to either recover from or return.
func Run[T any](s *Seq, p *Parser[T]) (T, error) {
	value, next, err := p.Parse(s.src, s.index)
	if err != nil {
		var zero T
		return zero, err
	}
	s.index = next
	return value, nil
}

// Sequence builds a Parser from a function that runs sub-parsers one after another.
//
// Each call to Run inside body parses the next step. Returning an error from body fails the whole
// sequence; errors that are not already an *Error are positioned at the index the sequence had
// reached. Input consumed by earlier steps is not given back by the sequence itself; wrap it in
// Either to backtrack.
//
//	pair := gobble.Sequence("pair", func(s *gobble.Seq) ([2]rune, error) {
//		a, err := gobble.Run(s, gobble.Dot)
//		if err != nil {
//			return [2]rune{}, err
//		}
//		b, err := gobble.Run(s, gobble.Dot)
//		return [2]rune{a, b}, err
//	})
func Sequence[T any](name string, body func(s *Seq) (T, error)) *Parser[T] {
	return New(name, func(src *Source, index int) (T, int, error) {
		s := &Seq{src: src, index: index}
		value, err := body(s)
		if err != nil {
			return value, index, AnnotateError(src.Position(s.index), err)
		}
		return value, s.index, nil
	})
}

// Bind runs p, then the parser f builds from its value, returning the latter's value.
func Bind[A, B any](p *Parser[A], f func(value A) *Parser[B]) *Parser[B] {
	return bind(fmt.Sprintf("bind(%s)", p), p, f)
}

// Map the value of p through f.
func Map[A, B any](p *Parser[A], f func(value A) B) *Parser[B] {
	return bind(fmt.Sprintf("map(%s)", p), p, func(value A) *Parser[B] { return Succeed(f(value)) })
}

// Catch runs p and, if it fails, the parser handle builds from the failure, at the same index p
// started at.
func Catch[T any](p *Parser[T], handle func(err *Error) *Parser[T]) *Parser[T] {
	return catch(fmt.Sprintf("catch(%s)", p), p, handle)
}

// Then parses a, then b, returning the value of b and discarding the value of a.
func Then[A, B any](a *Parser[A], b *Parser[B]) *Parser[B] {
	return bind(a.name+" "+b.name, a, func(A) *Parser[B] { return b })
}

// FollowedBy parses a, then b, returning the value of a and discarding the value of b.
func FollowedBy[A, B any](a *Parser[A], b *Parser[B]) *Parser[A] {
	return bind(a.name+" "+b.name, a, func(value A) *Parser[A] {
		return bind(b.name, b, func(B) *Parser[A] { return Succeed(value) })
	})
}

func bind[A, B any](name string, p *Parser[A], f func(value A) *Parser[B]) *Parser[B] {
	return New(name, func(src *Source, index int) (B, int, error) {
		value, next, err := p.Parse(src, index)
		if err != nil {
			var zero B
			return zero, index, err
		}
		return f(value).Parse(src, next)
	})
}

func catch[T any](name string, p *Parser[T], handle func(err *Error) *Parser[T]) *Parser[T] {
	return New(name, func(src *Source, index int) (T, int, error) {
		value, next, err := p.Parse(src, index)
		if err == nil {
			return value, next, nil
		}
		return handle(AnnotateError(src.Position(index), err)).Parse(src, index)
	})
}
