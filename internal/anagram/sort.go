package anagram

import "slices"

func sortedRunes(text string) []rune {
	rs := []rune(text)
	slices.Sort(rs)
	return rs
}

func sortedEqual(a, b string) bool {
	return slices.Equal(sortedRunes(a), sortedRunes(b))
}

// Signature returns the sorted normalized form of text. Two texts are anagrams
// under a mode exactly when their signatures under that mode are equal.
func Signature(text string, mode Mode) string {
	return string(sortedRunes(Normalize(text, mode)))
}
