package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/library"
	"lyricsync/internal/lrc"
)

func newSongsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "songs",
		Short: "List playable songs in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			songs := library.Scan(cfg.Paths.LibraryDir)
			out := cmd.OutOrStdout()
			if len(songs) == 0 {
				fmt.Fprintf(out, "No songs found in %s\n", cfg.Paths.LibraryDir)
				fmt.Fprintf(out, "Each song directory needs %s, %s, and %s\n",
					library.AudioFileName, library.StructureFileName, library.TimingFileName)
				return nil
			}

			rows := make([][]string, 0, len(songs))
			for _, song := range songs {
				structure := lrc.ParseFile(song.StructurePath)
				rows = append(rows, []string{
					song.Name,
					song.Title,
					fmt.Sprintf("%d", len(structure)),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]tableColumn{{title: "Name"}, {title: "Title"}, {title: "Lines", right: true}},
				rows,
			))
			return nil
		},
	}
}
