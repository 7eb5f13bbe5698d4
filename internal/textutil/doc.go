// Package textutil provides text canonicalization and similarity scoring
// for lyric comparison.
//
// Normalization lowercases text, strips everything that is not a letter,
// digit, or whitespace, and collapses whitespace runs, so that transcripts
// with differing punctuation and casing compare equal. MatchRatio scores two
// normalized words by their shared character runs, in [0, 1].
package textutil
