package schedule

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ismart-tools/vehicle-command/internal/log"
)

const (
	LockFile       = "climate_scheduler.lock"
	DefaultLockTTL = 2 * time.Hour
)

// ErrLocked indicates another process holds the run lock.
var ErrLocked = errors.New("schedule lock held by another process")

// Lock is an advisory lock file that keeps two scheduler runs from firing on the same day.
type Lock struct {
	path string
}

// AcquireLock creates the lock file in dir. A lock file older than ttl is assumed to belong to a
// process that died and is replaced.
func AcquireLock(dir string, ttl time.Duration, now time.Time) (*Lock, error) {
	path := filepath.Join(dir, LockFile)
	for attempt := 0; attempt < 2; attempt++ {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			_, err = fmt.Fprintf(file, "%d %s\n", os.Getpid(), now.Format(time.RFC3339))
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				os.Remove(path)
				return nil, err
			}
			return &Lock{path: path}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, err
		}
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if now.Sub(info.ModTime()) <= ttl {
			return nil, ErrLocked
		}
		log.Warning("Removing stale lock %s from %s", path, info.ModTime().Format(time.RFC3339))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, ErrLocked
}

// Release removes the lock file. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	err := os.Remove(l.path)
	l.path = ""
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
