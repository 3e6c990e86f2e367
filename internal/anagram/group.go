package anagram

import "sort"

// Family is a set of words sharing one signature.
type Family struct {
	Signature string   `json:"signature"`
	Members   []string `json:"members"`
}

// Size returns the number of members.
func (f Family) Size() int {
	return len(f.Members)
}

// Group partitions words into families by signature. Words that normalize to
// the empty string are dropped, and a word whose normalized form repeats an
// earlier member is skipped. Families keep the order in which their first
// member appeared; members keep input order.
func Group(words []string, mode Mode) []Family {
	index := make(map[string]int)
	seen := make(map[string]struct{})
	var families []Family
	for _, word := range words {
		normalized := Normalize(word, mode)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}

		sig := string(sortedRunes(normalized))
		pos, ok := index[sig]
		if !ok {
			pos = len(families)
			index[sig] = pos
			families = append(families, Family{Signature: sig})
		}
		families[pos].Members = append(families[pos].Members, word)
	}
	return families
}

// FilterFamilies keeps families with at least minSize members, ordered from
// largest to smallest. Ties keep their original order.
func FilterFamilies(families []Family, minSize int) []Family {
	out := make([]Family, 0, len(families))
	for _, fam := range families {
		if fam.Size() >= minSize {
			out = append(out, fam)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size() > out[j].Size()
	})
	return out
}
