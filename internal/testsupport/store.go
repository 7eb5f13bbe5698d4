package testsupport

import (
	"testing"

	"lyricsync/internal/config"
	"lyricsync/internal/store"
)

// MustOpenStore opens the alignment cache store for cfg and closes it when
// the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}
