package schedule

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const (
	StartDateFile = "schedule_start_date.txt"
	markerPrefix  = "executed_"
	markerSuffix  = ".flag"
)

// fileStore keeps one text file for the start date and one flag file per executed date.
type fileStore struct {
	dir string
}

func newFileStore(dir string) *fileStore {
	return &fileStore{dir: dir}
}

func (s *fileStore) markerPath(date Date) string {
	return filepath.Join(s.dir, markerPrefix+date.String()+markerSuffix)
}

func (s *fileStore) CampaignStart(ctx context.Context) (Date, bool, error) {
	contents, err := os.ReadFile(filepath.Join(s.dir, StartDateFile))
	if errors.Is(err, os.ErrNotExist) {
		return Date{}, false, nil
	}
	if err != nil {
		return Date{}, false, err
	}
	start, err := ParseDate(string(contents))
	if err != nil {
		return Date{}, false, err
	}
	return start, true, nil
}

func (s *fileStore) SetCampaignStart(ctx context.Context, start Date) error {
	return os.WriteFile(filepath.Join(s.dir, StartDateFile), []byte(start.String()), 0644)
}

func (s *fileStore) Executed(ctx context.Context, date Date) (bool, error) {
	_, err := os.Stat(s.markerPath(date))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (s *fileStore) MarkExecuted(ctx context.Context, date Date, at time.Time) error {
	return os.WriteFile(s.markerPath(date), []byte(markerText(at)), 0644)
}

func (s *fileStore) Close() error {
	return nil
}
