package lrc

import (
	"fmt"
	"io"
	"math"
)

// FormatTimestamp renders seconds as an LRC [mm:ss.xx] tag with hundredth
// precision.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds) / 60
	rem := seconds - float64(minutes)*60
	whole := int(rem)
	hundredths := int(math.Round((rem - float64(whole)) * 100))
	if hundredths >= 100 {
		hundredths -= 100
		whole++
		if whole >= 60 {
			whole -= 60
			minutes++
		}
	}
	return fmt.Sprintf("[%02d:%02d.%02d]", minutes, whole, hundredths)
}

// Write emits one [mm:ss.xx]text line per entry in input order.
func Write(w io.Writer, lines []Line) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s%s\n", FormatTimestamp(line.Timestamp), line.Text); err != nil {
			return fmt.Errorf("write lrc line: %w", err)
		}
	}
	return nil
}
