package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyricsync/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
				kind := statusOK
				message := status.Command
				if !status.Available {
					kind = statusError
					if status.Optional {
						kind = statusWarn
					}
					message = status.Detail
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
				if status.Description != "" {
					fmt.Fprintf(out, "%s%s\n", statusIndent+statusIndent, status.Description)
				}
			}
			return nil
		},
	}
}
