// Package library discovers songs in the configured music directory.
//
// A song is a subdirectory containing song.mp3, structure.lrc, and
// lyrics.lrc. Directories missing any of the three are skipped.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// AudioFileName is the audio track inside a song directory.
	AudioFileName = "song.mp3"
	// StructureFileName is the line-segmented display transcript.
	StructureFileName = "structure.lrc"
	// TimingFileName is the word-timestamped timing transcript.
	TimingFileName = "lyrics.lrc"
)

// Song is a playable library entry with all three source files present.
type Song struct {
	// Name is the directory name, used to address the song on the CLI.
	Name string
	// Title is the display form of Name.
	Title string
	Dir   string
	// AudioPath, StructurePath, and TimingPath are absolute file paths.
	AudioPath     string
	StructurePath string
	TimingPath    string
}

// Scan lists the complete songs under root, sorted by name. A missing or
// unreadable root yields an empty list rather than an error so callers can
// report "no songs" uniformly.
func Scan(root string) []Song {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var songs []Song
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		song := Song{
			Name:          entry.Name(),
			Title:         displayTitle(entry.Name()),
			Dir:           dir,
			AudioPath:     filepath.Join(dir, AudioFileName),
			StructurePath: filepath.Join(dir, StructureFileName),
			TimingPath:    filepath.Join(dir, TimingFileName),
		}
		if !allFilesExist(song.AudioPath, song.StructurePath, song.TimingPath) {
			continue
		}
		songs = append(songs, song)
	}

	sort.Slice(songs, func(i, j int) bool { return songs[i].Name < songs[j].Name })
	return songs
}

// Find resolves a song by directory name under root.
func Find(root, name string) (Song, error) {
	for _, song := range Scan(root) {
		if song.Name == name {
			return song, nil
		}
	}
	return Song{}, fmt.Errorf("song %q not found in %s (needs %s, %s, %s)",
		name, root, AudioFileName, StructureFileName, TimingFileName)
}

func allFilesExist(paths ...string) bool {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// displayTitle turns a directory name into a presentable title: separator
// characters become spaces and words are title-cased.
func displayTitle(name string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return name
	}
	return cases.Title(language.Und).String(title)
}
