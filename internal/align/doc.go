// Package align reconciles two transcripts of the same song into one
// word-level timed lyric stream.
//
// The structure transcript supplies the display line segmentation; the
// timing transcript supplies the timestamps. The two need not agree on word
// or line boundaries: the aligner fuzzy-matches each structure word against
// a bounded, forward-moving window of the timing sequence and interpolates a
// timestamp when no candidate is similar enough. The output is sorted by
// timestamp so a consumer can walk it forward-only against a clock.
package align
