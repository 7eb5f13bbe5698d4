package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyricsync/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.LibraryDir != filepath.Join(tempHome, "music") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	wantCache := filepath.Join(tempHome, ".local", "share", "lyricsync", "cache")
	if cfg.Paths.CacheDir != wantCache {
		t.Fatalf("unexpected cache dir: got %q want %q", cfg.Paths.CacheDir, wantCache)
	}
	if cfg.Alignment.SimilarityThreshold != 0.8 {
		t.Fatalf("unexpected similarity threshold: %v", cfg.Alignment.SimilarityThreshold)
	}
	if cfg.Alignment.FallbackGapSeconds != 0.3 {
		t.Fatalf("unexpected fallback gap: %v", cfg.Alignment.FallbackGapSeconds)
	}
	if cfg.Alignment.Backtrack != 2 || cfg.Alignment.Lookahead != 50 {
		t.Fatalf("unexpected search window: %d/%d", cfg.Alignment.Backtrack, cfg.Alignment.Lookahead)
	}
	if cfg.Playback.AudioPlayer != "ffplay" {
		t.Fatalf("unexpected audio player: %q", cfg.Playback.AudioPlayer)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.CacheDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "lyricsync.toml")

	contents := strings.Join([]string{
		"[paths]",
		`library_dir = "` + filepath.Join(tempDir, "songs") + `"`,
		"",
		"[alignment]",
		"similarity_threshold = 0.9",
		"",
		"[playback]",
		`audio_player = "  mpv  "`,
		"typing_speed_seconds = 0.5",
		"",
		"[logging]",
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("resolved path = %q, want %q", resolved, configPath)
	}

	if cfg.Paths.LibraryDir != filepath.Join(tempDir, "songs") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	if cfg.Alignment.SimilarityThreshold != 0.9 {
		t.Fatalf("unexpected similarity threshold: %v", cfg.Alignment.SimilarityThreshold)
	}
	// Unset sections keep their defaults.
	if cfg.Alignment.Lookahead != 50 {
		t.Fatalf("expected default lookahead, got %d", cfg.Alignment.Lookahead)
	}
	if cfg.Playback.AudioPlayer != "mpv" {
		t.Fatalf("expected trimmed audio player, got %q", cfg.Playback.AudioPlayer)
	}
	if cfg.Playback.TypingSpeedSeconds != 0.1 {
		t.Fatalf("expected typing speed clamped to 0.1, got %v", cfg.Playback.TypingSpeedSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased level, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingCustomPathFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "nope.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != missing {
		t.Fatalf("resolved path = %q, want %q", resolved, missing)
	}
	if cfg.Alignment.SimilarityThreshold != 0.8 {
		t.Fatalf("expected default threshold, got %v", cfg.Alignment.SimilarityThreshold)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "threshold above one",
			contents: "[alignment]\nsimilarity_threshold = 1.5\n",
			wantErr:  "similarity_threshold",
		},
		{
			name:     "negative gap",
			contents: "[alignment]\nfallback_gap_seconds = -0.1\n",
			wantErr:  "fallback_gap_seconds",
		},
		{
			name:     "negative backtrack",
			contents: "[alignment]\nbacktrack = -1\n",
			wantErr:  "backtrack",
		},
		{
			name:     "bad log format",
			contents: "[logging]\nformat = \"xml\"\n",
			wantErr:  "logging.format",
		},
		{
			name:     "bad log level",
			contents: "[logging]\nlevel = \"verbose\"\n",
			wantErr:  "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "lyricsync.toml")
			if err := os.WriteFile(configPath, []byte(tt.contents), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(configPath)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	samplePath := filepath.Join(tempHome, "nested", "config.toml")
	if err := config.CreateSample(samplePath); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(samplePath)
	if err != nil {
		t.Fatalf("loading sample config failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/music/library")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(tempHome, "music", "library") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
