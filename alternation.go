package gobble

import (
	"fmt"
)

// Either tries a, and if that fails tries b at the same index.
//
// This is ordered choice with unlimited backtracking: how far a got before failing has no bearing
// on b.
func Either[T any](a, b *Parser[T]) *Parser[T] {
	return either(fmt.Sprintf("(%s / %s)", a, b), a, b)
}

// Optional parses a, returning fallback without consuming input if a fails.
func Optional[T any](a *Parser[T], fallback T) *Parser[T] {
	return either(fmt.Sprintf("(%s)?", a), a, Succeed(fallback))
}

// Or is Either(p, b).
func (p *Parser[T]) Or(b *Parser[T]) *Parser[T] { return Either(p, b) }

// Optional is Optional(p, fallback).
func (p *Parser[T]) Optional(fallback T) *Parser[T] { return Optional(p, fallback) }

func either[T any](name string, a, b *Parser[T]) *Parser[T] {
	return catch(name, a, func(*Error) *Parser[T] { return b })
}
