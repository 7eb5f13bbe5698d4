package lrc

import (
	"math"
	"strings"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "[00:00.00]"},
		{5.0, "[00:05.00]"},
		{10.5, "[00:10.50]"},
		{62.25, "[01:02.25]"},
		{59.999, "[01:00.00]"},
		{3661.07, "[61:01.07]"},
		{-3, "[00:00.00]"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	input := []Line{
		{Timestamp: 10.5, Text: "hello"},
		{Timestamp: 11.0, Text: "world"},
		{Timestamp: 72.33, Text: "again"},
	}

	var sb strings.Builder
	if err := Write(&sb, input); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	parsed := Parse(strings.NewReader(sb.String()))
	if len(parsed) != len(input) {
		t.Fatalf("round trip produced %d lines, want %d", len(parsed), len(input))
	}
	for i, line := range parsed {
		if math.Abs(line.Timestamp-input[i].Timestamp) > 0.005 {
			t.Errorf("line[%d].Timestamp = %v, want %v within 0.005", i, line.Timestamp, input[i].Timestamp)
		}
		if line.Text != input[i].Text {
			t.Errorf("line[%d].Text = %q, want %q", i, line.Text, input[i].Text)
		}
	}
}
