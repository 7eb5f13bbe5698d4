package lrc

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Line is a single parsed lyric line with its timestamp in seconds.
type Line struct {
	Timestamp float64
	Text      string
}

// metadataTags are the bracketed LRC header tags that carry no lyric content.
var metadataTags = map[string]struct{}{
	"ti":     {},
	"ar":     {},
	"al":     {},
	"id":     {},
	"length": {},
}

// Parse reads LRC text and returns its lyric lines stably sorted by
// timestamp. Metadata tags, blank lines, and lines with malformed
// timestamps are skipped.
func Parse(r io.Reader) []Line {
	var lines []Line
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line, ok := parseLine(scanner.Text()); ok {
			lines = append(lines, line)
		}
	}
	// A scanner error mid-stream leaves the lines read so far usable;
	// degraded input is a quality problem, not a failure.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Timestamp < lines[j].Timestamp
	})
	return lines
}

// ParseFile parses the LRC file at path. An unreadable file yields nil.
func ParseFile(path string) []Line {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(raw string) (Line, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.HasPrefix(trimmed, "[") {
		return Line{}, false
	}
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return Line{}, false
	}

	tag := trimmed[1:end]
	if isMetadataTag(tag) {
		return Line{}, false
	}

	seconds, ok := parseTimestamp(tag)
	if !ok {
		return Line{}, false
	}

	text := strings.TrimSpace(trimmed[end+1:])
	if text == "" {
		return Line{}, false
	}
	return Line{Timestamp: seconds, Text: text}, true
}

func isMetadataTag(tag string) bool {
	name, _, found := strings.Cut(tag, ":")
	if !found {
		return false
	}
	_, known := metadataTags[strings.ToLower(strings.TrimSpace(name))]
	return known
}

// parseTimestamp converts an mm:ss.xx tag to total seconds. Minutes is an
// integer, seconds a float; anything else is rejected.
func parseTimestamp(tag string) (float64, bool) {
	minutePart, secondPart, found := strings.Cut(tag, ":")
	if !found {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(secondPart), 64)
	if err != nil {
		return 0, false
	}
	total := float64(minutes)*60 + seconds
	if total < 0 {
		return 0, false
	}
	return total, true
}
