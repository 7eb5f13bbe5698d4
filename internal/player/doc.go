// Package player paces a timed word stream against an elapsed-time clock
// and types it out on a terminal.
//
// The driver iterates the stream once, forward-only: each poll it emits
// every word whose timestamp the clock has passed, typing characters at a
// configured delay and closing the visual line on a line-end word. The
// clock is injectable so tests drive playback without real time, and
// cancellation flows through context rather than shared flags. One playback
// session per machine is enforced with a lock file.
package player
