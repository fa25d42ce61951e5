// Package lock guards a game directory against concurrent gcdir runs.
package lock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
)

// FileName is the lock file created inside the game directory.
// It is hidden, so the normalizer never treats it as a game entry.
const FileName = ".gcdir.lock"

// ErrLocked is returned when another run already holds the directory
var ErrLocked = errors.New("game directory is locked by another gcdir run")

// ErrUnavailable is returned when the lock file cannot be created because
// the game directory is read-only or not writable by this user
var ErrUnavailable = errors.New("cannot create lock file")

// Lock is an advisory, exclusive lock on one game directory
type Lock struct {
	path  string
	flock *flock.Flock
}

// Acquire takes the lock on dir without blocking
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, FileName)
	fl := flock.New(path)

	ok, err := fl.TryLock()
	if err != nil {
		if isReadOnly(err) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Path returns the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}

func isReadOnly(err error) bool {
	return errors.Is(err, syscall.EROFS) || errors.Is(err, fs.ErrPermission)
}
