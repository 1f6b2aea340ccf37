package gobble

import (
	"fmt"
	"strconv"
)

// Chars returns a Parser that accepts any one element of set, returning it.
func Chars(set string) *Parser[rune] {
	quoted := strconv.Quote(set)
	return class("["+quoted[1:len(quoted)-1]+"]", newRuneSet(set).contains)
}

// Range returns a Parser that accepts any one element in [lo, hi].
func Range(lo, hi rune) *Parser[rune] {
	name := fmt.Sprintf("[%s-%s]", quoteRune(lo), quoteRune(hi))
	return class(name, func(r rune) bool { return r >= lo && r <= hi })
}

// CharFunc returns a Parser that accepts any one element for which match returns true, eg.
// unicode.IsLetter.
func CharFunc(name string, match func(r rune) bool) *Parser[rune] {
	return class(name, match)
}

func class(name string, contains func(r rune) bool) *Parser[rune] {
	return New(name, func(src *Source, index int) (rune, int, error) {
		if index == src.Len() {
			return 0, index, src.errorf(index, "unexpected EOF")
		}
		r := src.At(index)
		if !contains(r) {
			return 0, index, src.errorf(index, "unexpected %q (expected one of %s)", r, name)
		}
		return r, index + 1, nil
	})
}

// Membership for ASCII is a bitmap lookup, anything else a map lookup.
type runeSet struct {
	ascii [2]uint64
	other map[rune]struct{}
}

func newRuneSet(set string) *runeSet {
	s := &runeSet{}
	for _, r := range set {
		if r < 128 {
			s.ascii[r/64] |= 1 << (uint(r) % 64)
			continue
		}
		if s.other == nil {
			s.other = map[rune]struct{}{}
		}
		s.other[r] = struct{}{}
	}
	return s
}

func (s *runeSet) contains(r rune) bool {
	if r >= 0 && r < 128 {
		return s.ascii[r/64]&(1<<(uint(r)%64)) != 0
	}
	_, ok := s.other[r]
	return ok
}

func quoteRune(r rune) string {
	quoted := strconv.QuoteRune(r)
	return quoted[1 : len(quoted)-1]
}
