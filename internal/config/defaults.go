package config

const (
	defaultLibraryDir = "~/music"
	defaultCacheDir   = "~/.local/share/lyricsync/cache"
	defaultLogDir     = "~/.local/share/lyricsync/logs"

	defaultSimilarityThreshold = 0.8
	defaultFallbackGapSeconds  = 0.3
	defaultBacktrack           = 2
	defaultLookahead           = 50

	defaultTypingSpeedSeconds = 0.03
	defaultPollIntervalMillis = 50
	defaultAudioPlayer        = "ffplay"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			CacheDir:   defaultCacheDir,
			LogDir:     defaultLogDir,
		},
		Alignment: Alignment{
			SimilarityThreshold: defaultSimilarityThreshold,
			FallbackGapSeconds:  defaultFallbackGapSeconds,
			Backtrack:           defaultBacktrack,
			Lookahead:           defaultLookahead,
		},
		Playback: Playback{
			TypingSpeedSeconds: defaultTypingSpeedSeconds,
			PollIntervalMillis: defaultPollIntervalMillis,
			AudioPlayer:        defaultAudioPlayer,
			AudioPlayerArgs:    []string{"-nodisp", "-autoexit", "-loglevel", "quiet"},
		},
		Cache: Cache{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
