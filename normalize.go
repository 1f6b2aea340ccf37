package gobble

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// A Normalizer maps text to a canonical form before a Literal compares it.
type Normalizer func(s string) string

// CaseFold normalizes by Unicode case folding, for case-insensitive literals.
func CaseFold(s string) string {
	// Casers are stateful and not safe for concurrent use.
	return cases.Fold().String(s)
}

// NFC normalizes to Unicode Normalization Form C.
func NFC(s string) string { return norm.NFC.String(s) }

func chain(normalizers []Normalizer) Normalizer {
	return func(s string) string {
		for _, normalize := range normalizers {
			s = normalize(s)
		}
		return s
	}
}
