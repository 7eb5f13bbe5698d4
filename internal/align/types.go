package align

// Word is a single display word with its resolved timestamp.
type Word struct {
	// Timestamp is the playback position in seconds at which the word
	// should appear.
	Timestamp float64
	// Text preserves the structure transcript's original casing and
	// punctuation.
	Text string
	// Line is the index of the word's line in the structure transcript.
	Line int
	// LineEnd marks the last word of its display line.
	LineEnd bool
	// Matched reports whether the timestamp came from a fuzzy match
	// against the timing transcript rather than fallback interpolation.
	Matched bool
}

// Stats summarizes how an alignment resolved its timestamps.
type Stats struct {
	Lines    int
	Words    int
	Matched  int
	Fallback int
}

// MatchRate returns the fraction of words resolved by fuzzy matching.
func (s Stats) MatchRate() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Words)
}

// Result is a completed alignment: the timed word stream plus its stats.
// An empty Words slice means alignment was unavailable (one or both
// transcripts had no usable entries) and the caller should fall back to
// playback without lyrics.
type Result struct {
	Words []Word
	Stats Stats
}

// timingEntry is one word of the flattened timing transcript. Every word on
// a timing line inherits that line's timestamp; sub-line resolution depends
// on the timing transcript being word-segmented upstream.
type timingEntry struct {
	timestamp  float64
	normalized string
	raw        string
}
