package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenSplitPattern matches runs of characters that are neither letters nor digits.
var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize splits text into lowercase tokens, dropping tokens with fewer than
// minLen runes. A minLen below 1 keeps every non-empty token.
func Tokenize(text string, minLen int) []string {
	lowered := strings.ToLower(text)
	raw := tokenSplitPattern.Split(lowered, -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if token == "" || utf8.RuneCountInString(token) < minLen {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// UniqueTokens is Tokenize with repeated tokens removed, preserving first
// occurrence order.
func UniqueTokens(text string, minLen int) []string {
	tokens := Tokenize(text, minLen)
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
