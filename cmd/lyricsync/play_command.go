package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"lyricsync/internal/audio"
	"lyricsync/internal/library"
	"lyricsync/internal/player"
	"lyricsync/internal/store"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var noCache bool
	var noAudio bool

	cmd := &cobra.Command{
		Use:   "play <song>",
		Short: "Play a library song with word-synchronized lyrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			song, err := library.Find(cfg.Paths.LibraryDir, args[0])
			if err != nil {
				return err
			}

			release, err := player.AcquireSession(cfg.Paths.CacheDir)
			if err != nil {
				return err
			}
			defer func() { _ = release() }()

			run := func(st *store.Store) error {
				result, _, err := alignFiles(cmd.Context(), cfg, st, logger, song.Name, song.StructurePath, song.TimingPath)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Now playing: %s\n", song.Title)

				playCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				backend := audio.New(cfg.Playback.AudioPlayer, cfg.Playback.AudioPlayerArgs)
				var playback *audio.Playback
				if !noAudio && backend.Enabled() {
					if backend.Available() {
						playback, err = backend.Start(playCtx, song.AudioPath)
						if err != nil {
							return err
						}
					} else {
						logger.Warn("audio player not found, pacing lyrics without audio", "binary", backend.Binary())
					}
				}

				if len(result.Words) == 0 {
					fmt.Fprintln(out, "No usable lyrics; playing without them")
					if playback != nil {
						return playback.Wait()
					}
					return nil
				}

				driver := &player.Player{
					Out:          out,
					TypingDelay:  time.Duration(cfg.Playback.TypingSpeedSeconds * float64(time.Second)),
					PollInterval: time.Duration(cfg.Playback.PollIntervalMillis) * time.Millisecond,
					Logger:       logger,
				}
				if err := driver.Run(playCtx, result.Words); err != nil {
					return err
				}
				if playback != nil {
					return playback.Wait()
				}
				return nil
			}

			if noCache || !cfg.Cache.Enabled {
				return run(nil)
			}
			return ctx.withStore(run)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the alignment cache")
	cmd.Flags().BoolVar(&noAudio, "no-audio", false, "Pace lyrics without launching the audio player")
	return cmd
}
