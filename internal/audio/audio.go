// Package audio shells out to an external player binary for audio playback.
//
// Audio decoding is delegated entirely to the configured player (ffplay by
// default). A missing or unconfigured binary is not an error at this layer;
// callers degrade to pacing lyrics without sound.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Player launches an external binary to play an audio file.
type Player struct {
	binary string
	args   []string
}

// New returns a Player for the given binary and fixed arguments. An empty
// binary yields a disabled player.
func New(binary string, args []string) *Player {
	return &Player{binary: strings.TrimSpace(binary), args: args}
}

// Enabled reports whether a player binary is configured.
func (p *Player) Enabled() bool {
	return p != nil && p.binary != ""
}

// Binary returns the configured player command.
func (p *Player) Binary() string {
	if p == nil {
		return ""
	}
	return p.binary
}

// Available reports whether the configured binary can be found on PATH.
func (p *Player) Available() bool {
	if !p.Enabled() {
		return false
	}
	_, err := exec.LookPath(p.binary)
	return err == nil
}

// Playback is a running audio process.
type Playback struct {
	cmd *exec.Cmd
}

// Start begins playback of the file at path. The process is killed when ctx
// is canceled.
func (p *Player) Start(ctx context.Context, path string) (*Playback, error) {
	if !p.Enabled() {
		return nil, errors.New("no audio player configured")
	}
	args := append(append([]string{}, p.args...), path)
	cmd := exec.CommandContext(ctx, p.binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.binary, err)
	}
	return &Playback{cmd: cmd}, nil
}

// Wait blocks until the audio process exits.
func (pb *Playback) Wait() error {
	if pb == nil || pb.cmd == nil {
		return nil
	}
	if err := pb.cmd.Wait(); err != nil {
		return fmt.Errorf("audio player: %w", err)
	}
	return nil
}
