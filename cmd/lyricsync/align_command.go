package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
	"lyricsync/internal/lrc"
	"lyricsync/internal/store"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "align <structure.lrc> <timing.lrc>",
		Short: "Align a structure transcript against a timing transcript",
		Long: "Produces a word-level timed lyric stream from two LRC files: one whose line\n" +
			"segmentation is authoritative for display and one whose timestamps are\n" +
			"authoritative for timing.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			structurePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve structure path: %w", err)
			}
			timingPath, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve timing path: %w", err)
			}
			for _, path := range []string{structurePath, timingPath} {
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("transcript not readable: %s", path)
				}
			}

			song := strings.TrimSuffix(filepath.Base(structurePath), filepath.Ext(structurePath))

			run := func(st *store.Store) error {
				result, cached, err := alignFiles(cmd.Context(), cfg, st, logger, song, structurePath, timingPath)
				if err != nil {
					return err
				}
				return reportAlignment(cmd, result, cached, outputPath)
			}

			if noCache || !cfg.Cache.Enabled {
				return run(nil)
			}
			return ctx.withStore(run)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result as a word-level LRC file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the alignment cache")
	return cmd
}

func reportAlignment(cmd *cobra.Command, result align.Result, cached bool, outputPath string) error {
	out := cmd.OutOrStdout()

	if len(result.Words) == 0 {
		fmt.Fprintln(out, "Alignment unavailable: one or both transcripts had no usable entries")
		return nil
	}

	rows := [][]string{
		{"Lines", fmt.Sprintf("%d", result.Stats.Lines)},
		{"Words", fmt.Sprintf("%d", result.Stats.Words)},
		{"Matched", fmt.Sprintf("%d", result.Stats.Matched)},
		{"Fallback", fmt.Sprintf("%d", result.Stats.Fallback)},
		{"Match rate", formatMatchRate(result.Stats)},
	}
	fmt.Fprintln(out, renderTable([]tableColumn{{title: "Metric"}, {title: "Value", right: true}}, rows))
	if cached {
		fmt.Fprintln(out, "(from cache)")
	}

	if outputPath == "" {
		return nil
	}

	expanded, err := config.ExpandPath(outputPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	file, err := os.Create(expanded)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := lrc.Write(file, align.ExportLines(result.Words)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote word-level LRC to %s\n", expanded)
	return nil
}
