package anagram

// Checker compares texts with a fixed mode and strategy. The zero value uses
// ModeASCII and StrategyCount.
type Checker struct {
	Mode     Mode
	Strategy Strategy

	// OnTable, when set, runs each time a frequency table is built.
	OnTable func()
}

// Check reports whether a and b are anagrams. A nil input is absent and makes
// the result false.
func (c Checker) Check(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return c.Equal(*a, *b)
}

// Equal reports whether a and b are anagrams.
func (c Checker) Equal(a, b string) bool {
	na := Normalize(a, c.Mode)
	nb := Normalize(b, c.Mode)
	// Equal character multisets imply equal byte lengths in every mode.
	if len(na) != len(nb) {
		return false
	}
	if c.Strategy == StrategySort {
		return sortedEqual(na, nb)
	}
	if c.OnTable != nil {
		c.OnTable()
	}
	if c.Mode == ModeUnicode {
		return countRunes(na, nb)
	}
	return countASCII(na, nb)
}

// AreAnagrams reports whether text1 and text2 hold the same multiset of ASCII
// letters and digits, ignoring case and every other character. Either input
// may be nil, which yields false.
func AreAnagrams(text1, text2 *string) bool {
	return Checker{}.Check(text1, text2)
}

// Equal is AreAnagrams for present inputs.
func Equal(a, b string) bool {
	return Checker{}.Equal(a, b)
}

// EqualCount compares a and b under mode using frequency tables.
func EqualCount(a, b string, mode Mode) bool {
	return Checker{Mode: mode, Strategy: StrategyCount}.Equal(a, b)
}

// EqualSorted compares a and b under mode by sorting their characters.
func EqualSorted(a, b string, mode Mode) bool {
	return Checker{Mode: mode, Strategy: StrategySort}.Equal(a, b)
}
