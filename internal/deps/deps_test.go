package deps_test

import (
	"strings"
	"testing"

	"lyricsync/internal/deps"
	"lyricsync/internal/testsupport"
)

func TestRequirementsNilConfig(t *testing.T) {
	reqs := deps.Requirements(nil)
	if len(reqs) != 1 {
		t.Fatalf("got %d requirements, want 1", len(reqs))
	}
	if reqs[0].Name != "audio player" || !reqs[0].Optional {
		t.Fatalf("unexpected requirement: %+v", reqs[0])
	}
}

func TestCheckBinaries(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries("fakeplay"))

	cfg.Playback.AudioPlayer = "fakeplay"
	statuses := deps.CheckBinaries(deps.Requirements(cfg))
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("stubbed binary should be available: %+v", statuses[0])
	}

	cfg.Playback.AudioPlayer = "no-such-player-binary"
	statuses = deps.CheckBinaries(deps.Requirements(cfg))
	if statuses[0].Available {
		t.Fatal("missing binary reported available")
	}
	if !strings.Contains(statuses[0].Detail, "not found") {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}

	cfg.Playback.AudioPlayer = ""
	statuses = deps.CheckBinaries(deps.Requirements(cfg))
	if statuses[0].Available || statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected status for unconfigured player: %+v", statuses[0])
	}
}
