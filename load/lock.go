package load

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

var ErrLocked = errors.New("target is locked by another process")

// Lock is a shared advisory lock on <path>.lock, held for a whole run so
// cooperating writers can wait before regenerating the target.
type Lock struct {
	flock *flock.Flock
	path  string
}

// LockShared takes the shared lock without blocking.
func LockShared(path string) (*Lock, error) {
	lockPath := path + ".lock"
	fl := flock.New(lockPath)
	ok, err := fl.TryRLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	return &Lock{flock: fl, path: lockPath}, nil
}

func (l *Lock) Path() string { return l.path }

func (l *Lock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
