package anagram

// asciiSlots covers a-z followed by 0-9.
const asciiSlots = 26 + 10

func asciiSlot(b byte) int {
	if b >= 'a' && b <= 'z' {
		return int(b - 'a')
	}
	return 26 + int(b-'0')
}

// countASCII compares two texts already normalized to [a-z0-9] and of equal
// length. A count dropping below zero ends the scan early.
func countASCII(a, b string) bool {
	var table [asciiSlots]int
	for i := 0; i < len(a); i++ {
		table[asciiSlot(a[i])]++
	}
	for i := 0; i < len(b); i++ {
		slot := asciiSlot(b[i])
		table[slot]--
		if table[slot] < 0 {
			return false
		}
	}
	return true
}

// countRunes is the map-backed form of countASCII for Unicode-normalized text.
func countRunes(a, b string) bool {
	table := make(map[rune]int)
	for _, r := range a {
		table[r]++
	}
	for _, r := range b {
		table[r]--
		if table[r] < 0 {
			return false
		}
	}
	return true
}
