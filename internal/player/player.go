package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lyricsync/internal/align"
)

// lineLead prefixes every new display line.
const lineLead = "♪ "

// Clock supplies the elapsed playback time the word timestamps are compared
// against.
type Clock interface {
	Elapsed() time.Duration
}

type wallClock struct {
	start time.Time
}

func (c wallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// NewWallClock returns a Clock measuring from now.
func NewWallClock() Clock {
	return wallClock{start: time.Now()}
}

// Player renders a timed word stream to Out.
type Player struct {
	Out io.Writer
	// Clock defaults to a wall clock started when Run begins.
	Clock Clock
	// TypingDelay is the pause between characters of a word.
	TypingDelay time.Duration
	// PollInterval is how often the clock is checked against the next
	// unconsumed word.
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Run consumes the words once, forward-only, emitting each as its timestamp
// passes. Returns ctx.Err() if canceled mid-stream, nil once the stream is
// exhausted. The words must be sorted by timestamp ascending.
func (p *Player) Run(ctx context.Context, words []align.Word) error {
	if len(words) == 0 {
		return nil
	}

	clock := p.Clock
	if clock == nil {
		clock = NewWallClock()
	}
	interval := p.PollInterval
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	index := 0
	lineOpen := false

	for index < len(words) {
		elapsed := clock.Elapsed().Seconds()
		for index < len(words) && elapsed >= words[index].Timestamp {
			word := words[index]
			if err := p.emit(ctx, word, lineOpen); err != nil {
				return err
			}
			lineOpen = !word.LineEnd
			index++
		}
		if index >= len(words) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if p.Logger != nil {
		p.Logger.Debug("word stream exhausted", "words", len(words))
	}
	return nil
}

func (p *Player) emit(ctx context.Context, word align.Word, lineOpen bool) error {
	if lineOpen {
		if _, err := io.WriteString(p.Out, " "); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
	} else {
		if _, err := io.WriteString(p.Out, lineLead); err != nil {
			return fmt.Errorf("write line lead: %w", err)
		}
	}

	if err := p.typeWord(ctx, word.Text); err != nil {
		return err
	}

	if word.LineEnd {
		if _, err := io.WriteString(p.Out, "\n"); err != nil {
			return fmt.Errorf("write line break: %w", err)
		}
	}
	return nil
}

// typeWord writes the word one character at a time, stopping promptly when
// ctx is canceled.
func (p *Player) typeWord(ctx context.Context, text string) error {
	if p.TypingDelay <= 0 {
		if _, err := io.WriteString(p.Out, text); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
		return nil
	}

	for _, r := range text {
		if _, err := io.WriteString(p.Out, string(r)); err != nil {
			return fmt.Errorf("write character: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.TypingDelay):
		}
	}
	return nil
}
