package align

import "lyricsync/internal/lrc"

// ExportLines renders timed words as one LRC line per word, suitable for
// writing a word-level LRC file with lrc.Write.
func ExportLines(words []Word) []lrc.Line {
	lines := make([]lrc.Line, 0, len(words))
	for _, word := range words {
		lines = append(lines, lrc.Line{Timestamp: word.Timestamp, Text: word.Text})
	}
	return lines
}
