package utils

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".docmerge.lock"

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("directory is locked by another docmerge process")

// LockDir takes an exclusive, non-blocking lock on dir. The returned function
// releases it.
func LockDir(dir string) (func() error, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	fl := flock.New(filepath.Join(dir, lockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", dir, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, ErrLocked)
	}
	return fl.Unlock, nil
}
