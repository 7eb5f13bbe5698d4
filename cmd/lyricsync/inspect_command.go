package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/align"
	"lyricsync/internal/library"
	"lyricsync/internal/lrc"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var showWords bool

	cmd := &cobra.Command{
		Use:   "inspect <song>",
		Short: "Report alignment quality for a library song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			song, err := library.Find(cfg.Paths.LibraryDir, args[0])
			if err != nil {
				return err
			}

			structure := lrc.ParseFile(song.StructurePath)
			timing := lrc.ParseFile(song.TimingPath)
			result := align.Align(structure, timing, alignOptions(cfg))

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if len(result.Words) == 0 {
				fmt.Fprintln(out, renderStatusLine("alignment", statusError, "no usable entries in one or both transcripts", colorize))
				return nil
			}

			kind := statusOK
			if result.Stats.MatchRate() < 0.5 {
				kind = statusWarn
			}
			fmt.Fprintf(out, "%s\n", song.Title)
			fmt.Fprintln(out, renderStatusLine("match rate", kind, formatMatchRate(result.Stats), colorize))
			fmt.Fprintln(out, renderStatusLine("words", statusInfo, fmt.Sprintf("%d (%d matched, %d fallback)",
				result.Stats.Words, result.Stats.Matched, result.Stats.Fallback), colorize))
			fmt.Fprintln(out, renderStatusLine("lines", statusInfo, fmt.Sprintf("%d", result.Stats.Lines), colorize))

			if !showWords {
				return nil
			}

			rows := make([][]string, 0, len(result.Words))
			for _, word := range result.Words {
				source := "fallback"
				if word.Matched {
					source = "matched"
				}
				rows = append(rows, []string{
					lrc.FormatTimestamp(word.Timestamp),
					word.Text,
					fmt.Sprintf("%d", word.Line+1),
					source,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]tableColumn{{title: "Time"}, {title: "Word"}, {title: "Line", right: true}, {title: "Source"}},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showWords, "words", false, "List every word with its resolved timestamp")
	return cmd
}
