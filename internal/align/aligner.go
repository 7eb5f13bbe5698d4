package align

import (
	"sort"
	"strings"

	"lyricsync/internal/lrc"
	"lyricsync/internal/textutil"
)

// Options tunes the alignment search. The window is asymmetric: a small
// backward allowance tolerates timing words that trail the cursor, while the
// forward lookahead bounds the per-word comparison cost instead of
// rescanning the whole timing track.
type Options struct {
	// Backtrack is how far behind the cursor the search window starts.
	Backtrack int
	// Lookahead is how far past the cursor the search window extends.
	Lookahead int
	// Threshold is the similarity ratio a candidate must exceed to match.
	Threshold float64
	// FallbackGap is the synthetic spacing in seconds between consecutive
	// unmatched words within a line.
	FallbackGap float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		Backtrack:   2,
		Lookahead:   50,
		Threshold:   0.8,
		FallbackGap: 0.3,
	}
}

func (o Options) normalized() Options {
	if o.Backtrack < 0 {
		o.Backtrack = 0
	}
	if o.Lookahead <= 0 {
		o.Lookahead = DefaultOptions().Lookahead
	}
	if o.Threshold <= 0 || o.Threshold > 1 {
		o.Threshold = DefaultOptions().Threshold
	}
	if o.FallbackGap <= 0 {
		o.FallbackGap = DefaultOptions().FallbackGap
	}
	return o
}

// Align produces one timed word per word of the structure transcript, using
// the timing transcript as the time source. If either transcript is empty
// the result is empty; degraded matching degrades timestamps, never errors.
func Align(structure, timing []lrc.Line, opts Options) Result {
	opts = opts.normalized()

	sequence := buildTimingSequence(timing)
	if len(structure) == 0 || len(sequence) == 0 {
		return Result{}
	}

	var words []Word
	stats := Stats{}
	cursor := 0

	for lineIdx, line := range structure {
		lineWords := strings.Fields(line.Text)
		if len(lineWords) == 0 {
			continue
		}
		stats.Lines++

		for wordIdx, word := range lineWords {
			normalized := textutil.Normalize(word)

			timestamp, next, matched := findMatch(sequence, normalized, cursor, opts)
			if matched {
				cursor = next
				stats.Matched++
			} else {
				if wordIdx == 0 {
					timestamp = line.Timestamp
				} else {
					timestamp = words[len(words)-1].Timestamp + opts.FallbackGap
				}
				stats.Fallback++
			}

			words = append(words, Word{
				Timestamp: timestamp,
				Text:      word,
				Line:      lineIdx,
				LineEnd:   wordIdx == len(lineWords)-1,
				Matched:   matched,
			})
			stats.Words++
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Timestamp < words[j].Timestamp
	})
	return Result{Words: words, Stats: stats}
}

// buildTimingSequence flattens the timing transcript into normalized words
// in transcript order. Words that normalize to nothing are dropped.
func buildTimingSequence(timing []lrc.Line) []timingEntry {
	var sequence []timingEntry
	for _, line := range timing {
		normalized, raw := textutil.NormalizeWords(line.Text)
		for i, norm := range normalized {
			sequence = append(sequence, timingEntry{
				timestamp:  line.Timestamp,
				normalized: norm,
				raw:        raw[i],
			})
		}
	}
	return sequence
}

// findMatch scans the window around cursor for the first candidate, in
// chronological order, whose similarity to the normalized word clears the
// threshold. The cursor only ever advances: a match at index i moves it to
// i+1, so earlier audio positions are never re-matched to later words.
func findMatch(sequence []timingEntry, normalized string, cursor int, opts Options) (timestamp float64, next int, matched bool) {
	if normalized == "" {
		return 0, cursor, false
	}
	start := cursor - opts.Backtrack
	if start < 0 {
		start = 0
	}
	end := cursor + opts.Lookahead
	if end > len(sequence) {
		end = len(sequence)
	}
	for i := start; i < end; i++ {
		if textutil.MatchRatio(normalized, sequence[i].normalized) > opts.Threshold {
			return sequence[i].timestamp, i + 1, true
		}
	}
	return 0, cursor, false
}
