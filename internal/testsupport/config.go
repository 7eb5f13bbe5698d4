// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"lyricsync/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(testing.TB, *config.Config, string)

// NewConfig produces a config rooted in a fresh temp directory. The audio
// player is cleared so tests never shell out unless they opt in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "music")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Playback.AudioPlayer = ""

	for _, opt := range opts {
		opt(t, &cfg, base)
	}
	return &cfg
}

// WithAudioPlayer sets the external audio player binary on the test config.
func WithAudioPlayer(binary string) ConfigOption {
	return func(_ testing.TB, cfg *config.Config, _ string) {
		cfg.Playback.AudioPlayer = binary
	}
}

// WithStubbedBinaries writes no-op executables for the given names and puts
// them first on PATH for the duration of the test.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(t testing.TB, _ *config.Config, base string) {
		t.Helper()

		binDir := filepath.Join(base, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			t.Fatalf("mkdir bin dir: %v", err)
		}
		for _, name := range names {
			stub := filepath.Join(binDir, name)
			if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
				t.Fatalf("write stub %s: %v", name, err)
			}
		}
		t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CacheDir)
}
