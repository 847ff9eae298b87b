package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks and recomposes, so
// PAIXÃO and PAIXAO compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeWord uppercases and strips diacritics. Secret words and guesses go
// through the same function before any comparison.
func NormalizeWord(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeLetter reduces a guess to a single uppercase A-Z rune.
func NormalizeLetter(s string) (rune, error) {
	w := []rune(NormalizeWord(s))
	if len(w) != 1 {
		return 0, ErrInvalidLetter
	}
	r := w[0]
	if r < 'A' || r > 'Z' {
		return 0, ErrInvalidLetter
	}
	return r, nil
}
