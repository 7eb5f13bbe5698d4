// Package lrc parses and writes the line-oriented timestamped lyric format.
//
// Meaningful lines have the shape [mm:ss.xx]content. Metadata tags (ti, ar,
// al, id, length) and anything that does not carry a parsable timestamp are
// skipped rather than reported; an unreadable or fully malformed source
// parses to an empty slice so callers can fall back to lyrics-less playback.
package lrc
