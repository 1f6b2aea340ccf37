package gobble

import (
	"fmt"
)

// Star matches a zero or more times, returning the matches in order.
func Star[T any](a *Parser[T]) *Parser[[]T] { return replicated(a, "*", 0) }

// Plus matches a one or more times, returning the matches in order.
func Plus[T any](a *Parser[T]) *Parser[[]T] { return replicated(a, "+", 1) }

func replicated[T any](a *Parser[T], operator string, minCount int) *Parser[[]T] {
	insufficient := Fail[[]T](fmt.Sprintf("not enough matches of %s", a))
	return Sequence(fmt.Sprintf("(%s)%s", a, operator), func(s *Seq) ([]T, error) {
		matches := []T{}
		for {
			start := s.Index()
			match, err := Run(s, a)
			if err != nil {
				break
			}
			matches = append(matches, match)
			// A zero-width match would repeat forever at the same index.
			if s.Index() == start {
				break
			}
		}
		if len(matches) >= minCount {
			return matches, nil
		}
		return Run(s, insufficient)
	})
}
