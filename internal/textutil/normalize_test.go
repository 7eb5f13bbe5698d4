package textutil

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Hello World", "hello world"},
		{"strips punctuation", "don't stop, believin'!", "dont stop believin"},
		{"collapses whitespace", "too   many\tspaces", "too many spaces"},
		{"trims ends", "  padded  ", "padded"},
		{"pure punctuation", "?!...---", ""},
		{"empty", "", ""},
		{"digits kept", "Route 66", "route 66"},
		{"unicode letters kept", "Café Déjà", "café déjà"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"  MIXED case   AND spacing ",
		"already normalized",
		"?!",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeWords(t *testing.T) {
	normalized, raw := NormalizeWords("Hello, -- World!")
	if strings.Join(normalized, "|") != "hello|world" {
		t.Errorf("normalized = %v, want [hello world]", normalized)
	}
	// The pure-punctuation word is dropped from both slices; originals keep
	// their casing and punctuation.
	if strings.Join(raw, "|") != "Hello,|World!" {
		t.Errorf("raw = %v, want [Hello, World!]", raw)
	}
}

func TestNormalizeWordsEmpty(t *testing.T) {
	normalized, raw := NormalizeWords("?! ... --")
	if len(normalized) != 0 || len(raw) != 0 {
		t.Errorf("expected no words, got %v / %v", normalized, raw)
	}
}
