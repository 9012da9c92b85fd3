package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrUnknownStore is returned by OpenStore for an unsupported backend name.
var ErrUnknownStore = errors.New("unknown schedule store")

// Store persists the campaign start date and the daily execution markers.
//
// Implementations need not be safe for use by concurrent processes; see AcquireLock.
type Store interface {
	// CampaignStart returns the recorded start date, or false if the campaign has not started.
	CampaignStart(ctx context.Context) (Date, bool, error)
	SetCampaignStart(ctx context.Context, start Date) error
	// Executed returns true if a marker exists for date.
	Executed(ctx context.Context, date Date) (bool, error)
	// MarkExecuted writes the marker for date, replacing an existing one.
	MarkExecuted(ctx context.Context, date Date, at time.Time) error
	Close() error
}

const (
	StoreFiles  = "files"
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// StoreKinds lists the names accepted by OpenStore.
var StoreKinds = []string{StoreFiles, StoreJSON, StoreSQLite}

// OpenStore opens the backend called kind in directory dir, creating dir if needed. An empty kind
// selects StoreFiles.
func OpenStore(kind, dir string) (Store, error) {
	if dir == "" {
		dir = "."
	}
	switch kind {
	case "", StoreFiles, StoreJSON, StoreSQLite:
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownStore, kind, StoreKinds)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	switch kind {
	case StoreJSON:
		return newJSONStore(dir), nil
	case StoreSQLite:
		return openSQLiteStore(dir)
	default:
		return newFileStore(dir), nil
	}
}

func markerText(at time.Time) string {
	return "Executed at " + at.Format(time.RFC3339)
}
