package player

import (
	"strings"
	"testing"
)

func TestAcquireSession(t *testing.T) {
	dir := t.TempDir()

	release, err := AcquireSession(dir)
	if err != nil {
		t.Fatalf("AcquireSession failed: %v", err)
	}

	if _, err := AcquireSession(dir); err == nil {
		t.Fatal("expected second session to be rejected")
	} else if !strings.Contains(err.Error(), "playback.lock") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	release, err = AcquireSession(dir)
	if err != nil {
		t.Fatalf("AcquireSession after release failed: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
}
