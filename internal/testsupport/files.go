package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteLRC writes the given lines as an LRC file at path.
func WriteLRC(t testing.TB, path string, lines ...string) {
	t.Helper()
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
}

// WriteSong lays out a complete song directory under libraryDir and returns
// its path. The structure and timing arguments are raw LRC text.
func WriteSong(t testing.TB, libraryDir, name, structure, timing string) string {
	t.Helper()

	dir := filepath.Join(libraryDir, name)
	WriteFile(t, filepath.Join(dir, "song.mp3"), "not really audio")
	WriteFile(t, filepath.Join(dir, "structure.lrc"), structure)
	WriteFile(t, filepath.Join(dir, "lyrics.lrc"), timing)
	return dir
}
