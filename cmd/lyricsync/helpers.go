package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
	"lyricsync/internal/lrc"
	"lyricsync/internal/store"
)

func alignOptions(cfg *config.Config) align.Options {
	backtrack, lookahead, threshold, gap := cfg.AlignOptionValues()
	return align.Options{
		Backtrack:   backtrack,
		Lookahead:   lookahead,
		Threshold:   threshold,
		FallbackGap: gap,
	}
}

// alignFiles aligns the two transcript files, consulting the cache first
// when a store is supplied. The second return reports a cache hit. An empty
// result means alignment was unavailable; callers choose the fallback.
func alignFiles(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger, song, structurePath, timingPath string) (align.Result, bool, error) {
	var structureFP, timingFP string
	if st != nil {
		var err error
		structureFP, err = store.Fingerprint(structurePath)
		if err != nil {
			return align.Result{}, false, fmt.Errorf("fingerprint structure transcript: %w", err)
		}
		timingFP, err = store.Fingerprint(timingPath)
		if err != nil {
			return align.Result{}, false, fmt.Errorf("fingerprint timing transcript: %w", err)
		}

		if _, cached, err := st.Lookup(ctx, structureFP, timingFP); err == nil {
			if logger != nil {
				logger.Debug("alignment cache hit", "song", song, "words", cached.Stats.Words)
			}
			return cached, true, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			return align.Result{}, false, err
		}
	}

	structure := lrc.ParseFile(structurePath)
	timing := lrc.ParseFile(timingPath)
	result := align.Align(structure, timing, alignOptions(cfg))

	if logger != nil {
		logger.Info("aligned transcripts",
			"song", song,
			"lines", result.Stats.Lines,
			"words", result.Stats.Words,
			"matched", result.Stats.Matched,
			"fallback", result.Stats.Fallback,
		)
	}

	if st != nil && len(result.Words) > 0 {
		if _, err := st.Save(ctx, song, structureFP, timingFP, result); err != nil {
			// Cache failures degrade to re-alignment next run.
			if logger != nil {
				logger.Warn("cache alignment", "error", err)
			}
		}
	}

	return result, false, nil
}

func formatMatchRate(stats align.Stats) string {
	return fmt.Sprintf("%.0f%%", stats.MatchRate()*100)
}
