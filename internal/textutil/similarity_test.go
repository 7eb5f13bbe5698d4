package textutil

import (
	"math"
	"testing"
)

func TestMatchRatioIdentical(t *testing.T) {
	for _, s := range []string{"hello", "a", "longer phrase"} {
		if got := MatchRatio(s, s); got != 1.0 {
			t.Errorf("MatchRatio(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestMatchRatioDisjoint(t *testing.T) {
	if got := MatchRatio("abc", "xyz"); got != 0 {
		t.Errorf("MatchRatio(disjoint) = %v, want 0", got)
	}
}

func TestMatchRatioBothEmpty(t *testing.T) {
	if got := MatchRatio("", ""); got != 1.0 {
		t.Errorf("MatchRatio(empty, empty) = %v, want 1.0", got)
	}
}

func TestMatchRatioOneEmpty(t *testing.T) {
	if got := MatchRatio("", "word"); got != 0 {
		t.Errorf("MatchRatio(empty, word) = %v, want 0", got)
	}
}

func TestMatchRatioKnownValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		// h + llo match: 2*4/10
		{"hello", "hallo", 0.8},
		// ello matches: 2*4/9
		{"hello", "ello", 8.0 / 9.0},
		// single shared run "wor": 2*3/10
		{"world", "worse", 0.6},
	}

	for _, tt := range tests {
		got := MatchRatio(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MatchRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchRatioSymmetricScore(t *testing.T) {
	pairs := [][2]string{
		{"hello", "hallo"},
		{"believing", "believin"},
		{"night", "tonight"},
	}
	for _, pair := range pairs {
		ab := MatchRatio(pair[0], pair[1])
		ba := MatchRatio(pair[1], pair[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("MatchRatio(%q, %q) = %v but reversed = %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestMatchRatioMonotonicInSharedRuns(t *testing.T) {
	// Growing the shared prefix against the same target must not lower the
	// score.
	target := "believing"
	prev := 0.0
	for _, candidate := range []string{"b", "be", "bel", "beli", "believ", "believing"} {
		got := MatchRatio(candidate, target)
		if got < prev {
			t.Fatalf("MatchRatio(%q, %q) = %v decreased from %v", candidate, target, got, prev)
		}
		prev = got
	}
}
