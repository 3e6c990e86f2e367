package anagram

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the text that anagram comparison operates on.
// Unrecognized modes behave like ModeASCII.
func Normalize(text string, mode Mode) string {
	switch mode {
	case ModeFold:
		return normalizeASCII(foldMarks(text))
	case ModeUnicode:
		return normalizeUnicode(text)
	default:
		return normalizeASCII(text)
	}
}

func normalizeASCII(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		// Lower-case first: some non-ASCII runes (e.g. the Kelvin sign) map into [a-z].
		r = unicode.ToLower(r)
		if isASCIIAlnum(r) {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

func normalizeUnicode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// foldMarks decomposes compatibility forms and removes nonspacing marks, so
// "Café" becomes "Cafe" and "ﬁ" becomes "fi".
func foldMarks(text string) string {
	// transform.Chain keeps internal state, so each call builds its own.
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(folder, text)
	if err != nil {
		return text
	}
	return folded
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
