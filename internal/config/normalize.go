package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePlayback()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []*string{
		&c.Paths.LibraryDir,
		&c.Paths.CacheDir,
		&c.Paths.LogDir,
	}
	for _, field := range fields {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func (c *Config) normalizePlayback() {
	c.Playback.AudioPlayer = strings.TrimSpace(c.Playback.AudioPlayer)
	if c.Playback.PollIntervalMillis <= 0 {
		c.Playback.PollIntervalMillis = defaultPollIntervalMillis
	}
	// The original player clamps typing speed to a usable terminal range.
	if c.Playback.TypingSpeedSeconds <= 0 {
		c.Playback.TypingSpeedSeconds = defaultTypingSpeedSeconds
	}
	if c.Playback.TypingSpeedSeconds > 0.1 {
		c.Playback.TypingSpeedSeconds = 0.1
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
