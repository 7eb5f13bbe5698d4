package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.CacheDir == "" {
		return errors.New("paths.cache_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateAlignment() error {
	if c.Alignment.SimilarityThreshold <= 0 || c.Alignment.SimilarityThreshold > 1 {
		return errors.New("alignment.similarity_threshold must be in (0, 1]")
	}
	if c.Alignment.FallbackGapSeconds <= 0 {
		return errors.New("alignment.fallback_gap_seconds must be positive")
	}
	if c.Alignment.Backtrack < 0 {
		return errors.New("alignment.backtrack must not be negative")
	}
	if c.Alignment.Lookahead <= 0 {
		return errors.New("alignment.lookahead must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
