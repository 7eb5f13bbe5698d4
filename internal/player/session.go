package player

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AcquireSession takes the machine-wide playback lock under dir. Two
// interactive sessions would interleave on the same terminal clock, so only
// one may run at a time. The returned release must be called when playback
// ends.
func AcquireSession(dir string) (release func() error, err error) {
	lockPath := filepath.Join(dir, "playback.lock")
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire playback lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another playback session holds %s", lockPath)
	}
	return lock.Unlock, nil
}
