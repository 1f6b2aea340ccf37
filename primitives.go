package gobble

import (
	"strconv"
	"unicode/utf8"

	"github.com/gobble-go/gobble/location"
)

var (
	// Dot matches any single element.
	Dot = New(".", func(src *Source, index int) (rune, int, error) {
		if index == src.Len() {
			return 0, index, src.errorf(index, "unexpected EOF")
		}
		return src.At(index), index + 1, nil
	})

	// Location returns the current position without consuming input.
	Location = New("<location>", func(src *Source, index int) (location.Position, int, error) {
		return src.Position(index), index, nil
	})

	// Index returns the current offset without consuming input.
	Index = New("<index>", func(src *Source, index int) (int, int, error) {
		return index, index, nil
	})
)

// Succeed returns a Parser that always succeeds with value, consuming nothing.
func Succeed[T any](value T) *Parser[T] {
	return New("<succeed>", func(src *Source, index int) (T, int, error) {
		return value, index, nil
	})
}

// Fail returns a Parser which always fails with the same message.
func Fail[T any](message string) *Parser[T] {
	return Sequence("<error>", func(s *Seq) (T, error) {
		var zero T
		pos, err := Run(s, Location)
		if err != nil {
			return zero, err
		}
		return zero, &Error{Msg: message, Pos: pos}
	})
}

// Literal returns a Parser that accepts exactly value, returning value on a match.
//
// Normalizers are applied in order to both value and the candidate input before comparison, eg.
// passing CaseFold gives case-insensitive matching. The candidate is always as many elements long
// as value.
func Literal(value string, normalizers ...Normalizer) *Parser[string] {
	normalize := chain(normalizers)
	want := normalize(value)
	width := utf8.RuneCountInString(value)
	return New(strconv.Quote(value), func(src *Source, index int) (string, int, error) {
		next := index + width
		if next <= src.Len() && normalize(src.Slice(index, next)) == want {
			return value, next, nil
		}
		return "", index, src.errorf(index, "expected %q", value)
	})
}
