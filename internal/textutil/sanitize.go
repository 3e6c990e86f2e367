package textutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizeLabel converts a string to a lowercase label safe for storage and
// log fields. Letters are lowercased, digits and hyphens/underscores are kept,
// everything else becomes an underscore. Returns "unknown" for empty input.
func SanitizeLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}

// SourceLabel derives an import source label from a file path.
func SourceLabel(path string) string {
	base := filepath.Base(path)
	return SanitizeLabel(strings.TrimSuffix(base, filepath.Ext(base)))
}

// TitleFromLabel turns a label such as "words_alpha" into "Words Alpha".
func TitleFromLabel(label string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range label {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown"
	}
	return cases.Title(language.Und).String(title)
}
