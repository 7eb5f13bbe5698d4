package textutil

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for comparison: lowercase, letters/digits/
// whitespace only, single spaces, trimmed. Idempotent; a string of pure
// punctuation normalizes to "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeWords splits text on whitespace and normalizes each word,
// dropping words whose normalized form is empty. The returned slices are
// parallel: normalized form and original form.
func NormalizeWords(text string) (normalized, raw []string) {
	for _, word := range strings.Fields(text) {
		norm := Normalize(word)
		if norm == "" {
			continue
		}
		normalized = append(normalized, norm)
		raw = append(raw, word)
	}
	return normalized, raw
}
