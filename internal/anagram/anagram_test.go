package anagram_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"anagramkit/internal/anagram"
)

func ptr(s string) *string { return &s }

func TestAreAnagrams(t *testing.T) {
	tests := []struct {
		name string
		a    *string
		b    *string
		want bool
	}{
		{"listen silent", ptr("Listen"), ptr("Silent"), true},
		{"hello world", ptr("hello"), ptr("world"), false},
		{"spaces and case ignored", ptr("Dormitory"), ptr("Dirty room"), true},
		{"both empty", ptr(""), ptr(""), true},
		{"punctuation only", ptr("?!"), ptr(""), true},
		{"digits count", ptr("a1b2"), ptr("2b1a"), true},
		{"digit differs", ptr("a1"), ptr("a2"), false},
		{"first absent", nil, ptr("abc"), false},
		{"second absent", ptr("abc"), nil, false},
		{"both absent", nil, nil, false},
		{"same length different letters", ptr("aab"), ptr("abb"), false},
		{"kelvin sign lowercases to k", ptr("\u212Aey"), ptr("yek"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := anagram.AreAnagrams(tt.a, tt.b); got != tt.want {
				t.Errorf("AreAnagrams() = %v, want %v", got, tt.want)
			}
			if got := anagram.AreAnagrams(tt.b, tt.a); got != tt.want {
				t.Errorf("AreAnagrams() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckerStrategiesMatchFixedCases(t *testing.T) {
	pairs := [][2]string{
		{"Listen", "Silent"},
		{"hello", "world"},
		{"Dormitory", "Dirty room"},
		{"", ""},
		{"The eyes", "They see"},
		{"Astronomer", "Moon starer"},
		{"abc", "abcd"},
	}
	for _, mode := range anagram.Modes() {
		for _, p := range pairs {
			count := anagram.EqualCount(p[0], p[1], mode)
			sorted := anagram.EqualSorted(p[0], p[1], mode)
			if count != sorted {
				t.Errorf("mode %s: count=%v sort=%v for %q/%q", mode, count, sorted, p[0], p[1])
			}
		}
	}
}

func TestLengthMismatchSkipsFrequencyTable(t *testing.T) {
	var tables int
	checker := anagram.Checker{OnTable: func() { tables++ }}

	if checker.Equal("abc", "abcd") {
		t.Fatal("expected different lengths to be rejected")
	}
	if tables != 0 {
		t.Fatalf("expected no frequency table for length mismatch, built %d", tables)
	}

	if checker.Equal("Dormitory", "Dirty room  !!") != true {
		t.Fatal("expected punctuation-padded anagram to match")
	}
	if tables != 1 {
		t.Fatalf("expected one frequency table after equal-length check, built %d", tables)
	}

	if checker.Check(nil, ptr("abc")) {
		t.Fatal("expected absent input to be rejected")
	}
	if tables != 1 {
		t.Fatalf("absent input must not build a table, built %d", tables)
	}
}

func TestSortStrategyNeverBuildsTable(t *testing.T) {
	var tables int
	checker := anagram.Checker{Strategy: anagram.StrategySort, OnTable: func() { tables++ }}
	if !checker.Equal("Listen", "Silent") {
		t.Fatal("expected sort strategy to match anagrams")
	}
	if tables != 0 {
		t.Fatalf("sort strategy built %d tables", tables)
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		name string
		mode anagram.Mode
		a, b string
		want bool
	}{
		{"ascii strips accents entirely", anagram.ModeASCII, "Café", "face", false},
		{"fold keeps base letter", anagram.ModeFold, "Café", "face", true},
		{"fold umlaut", anagram.ModeFold, "über", "rebu", true},
		{"unicode keeps umlaut distinct", anagram.ModeUnicode, "über", "rebu", false},
		{"unicode umlaut anagram", anagram.ModeUnicode, "Ärger", "Regär", true},
		{"ascii ignores non-ascii letters", anagram.ModeASCII, "ab-é", "ba", true},
		{"unicode counts non-ascii letters", anagram.ModeUnicode, "ab-é", "ba", false},
		{"unicode cjk", anagram.ModeUnicode, "日本", "本日", true},
		{"fold ligature", anagram.ModeFold, "ﬁne", "nife", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := anagram.EqualCount(tt.a, tt.b, tt.mode); got != tt.want {
				t.Errorf("EqualCount(%q, %q, %s) = %v, want %v", tt.a, tt.b, tt.mode, got, tt.want)
			}
			if got := anagram.EqualSorted(tt.a, tt.b, tt.mode); got != tt.want {
				t.Errorf("EqualSorted(%q, %q, %s) = %v, want %v", tt.a, tt.b, tt.mode, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		mode  anagram.Mode
		want  string
	}{
		{"Dirty room!", anagram.ModeASCII, "dirtyroom"},
		{"  A-1_b ", anagram.ModeASCII, "a1b"},
		{"Café", anagram.ModeASCII, "caf"},
		{"Café", anagram.ModeFold, "cafe"},
		{"ﬁne", anagram.ModeFold, "fine"},
		{"ÄÖÜ 123", anagram.ModeUnicode, "äöü123"},
		{"Hello, 世界", anagram.ModeUnicode, "hello世界"},
		{"Hello", anagram.Mode("bogus"), "hello"},
		{"", anagram.ModeFold, ""},
	}
	for _, tt := range tests {
		if got := anagram.Normalize(tt.input, tt.mode); got != tt.want {
			t.Errorf("Normalize(%q, %s) = %q, want %q", tt.input, tt.mode, got, tt.want)
		}
	}
}

func TestNormalizeIdempotentForCaseEdgeRunes(t *testing.T) {
	inputs := []string{"\u0130stanbul", "\u01C5ungla", "\u2126hm", "\u212Aelvin", "\u03A3\u039F\u03A3"}
	for _, mode := range anagram.Modes() {
		for _, in := range inputs {
			once := anagram.Normalize(in, mode)
			if twice := anagram.Normalize(once, mode); twice != once {
				t.Errorf("mode %s: Normalize(%q) = %q, then %q", mode, in, once, twice)
			}
		}
	}
}

func TestSignature(t *testing.T) {
	if got := anagram.Signature("Silent!", anagram.ModeASCII); got != "eilnst" {
		t.Fatalf("Signature = %q, want %q", got, "eilnst")
	}
	if anagram.Signature("Listen", anagram.ModeASCII) != anagram.Signature("enlist", anagram.ModeASCII) {
		t.Fatal("expected anagrams to share a signature")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    anagram.Mode
		wantErr bool
	}{
		{"", anagram.ModeASCII, false},
		{"ASCII", anagram.ModeASCII, false},
		{" fold ", anagram.ModeFold, false},
		{"unicode", anagram.ModeUnicode, false},
		{"latin1", "", true},
	}
	for _, tt := range tests {
		got, err := anagram.ParseMode(tt.input)
		if tt.wantErr {
			if !errors.Is(err, anagram.ErrUnknownMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	if got, err := anagram.ParseStrategy(""); err != nil || got != anagram.StrategyCount {
		t.Fatalf("ParseStrategy(\"\") = %q, %v", got, err)
	}
	if got, err := anagram.ParseStrategy("Sort"); err != nil || got != anagram.StrategySort {
		t.Fatalf("ParseStrategy(Sort) = %q, %v", got, err)
	}
	if _, err := anagram.ParseStrategy("hash"); !errors.Is(err, anagram.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

const sweepAlphabet = "aAbBcC01 !,.-éÉüß日本Ḱﬁ"

func randomText(r *rand.Rand, alphabet []rune) string {
	n := r.IntN(12)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

// shuffled returns a permutation of s so the sweep exercises positive cases too.
func shuffled(r *rand.Rand, s string) string {
	rs := []rune(s)
	r.Shuffle(len(rs), func(i, j int) { rs[i], rs[j] = rs[j], rs[i] })
	return string(rs)
}

func TestPropertySweep(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	alphabet := []rune(sweepAlphabet)

	for i := 0; i < 5000; i++ {
		a := randomText(r, alphabet)
		b := randomText(r, alphabet)
		if i%3 == 0 {
			b = shuffled(r, a)
		}
		for _, mode := range anagram.Modes() {
			count := anagram.EqualCount(a, b, mode)
			sorted := anagram.EqualSorted(a, b, mode)
			if count != sorted {
				t.Fatalf("mode %s: strategies disagree for %q/%q: count=%v sort=%v", mode, a, b, count, sorted)
			}
			if count != anagram.EqualCount(b, a, mode) {
				t.Fatalf("mode %s: not symmetric for %q/%q", mode, a, b)
			}
			if !anagram.EqualCount(a, a, mode) {
				t.Fatalf("mode %s: %q is not an anagram of itself", mode, a)
			}
			sigMatch := anagram.Signature(a, mode) == anagram.Signature(b, mode)
			if sigMatch != count {
				t.Fatalf("mode %s: signature match %v disagrees with check %v for %q/%q", mode, sigMatch, count, a, b)
			}
			if i%3 == 0 && !count {
				t.Fatalf("mode %s: permutation %q of %q rejected", mode, b, a)
			}
		}
		for _, mode := range anagram.Modes() {
			once := anagram.Normalize(a, mode)
			if twice := anagram.Normalize(once, mode); twice != once {
				t.Fatalf("mode %s: Normalize not idempotent for %q: %q then %q", mode, a, once, twice)
			}
		}
	}
}
