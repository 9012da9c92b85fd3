package schedule

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const DatabaseFile = "schedule_state.db"

//go:embed schema.sql
var schema string

type sqliteStore struct {
	db *sql.DB
}

func openSQLiteStore(dir string) (*sqliteStore, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) CampaignStart(ctx context.Context) (Date, bool, error) {
	var text string
	err := s.db.QueryRowContext(ctx, `SELECT start_date FROM campaign WHERE id = 1`).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return Date{}, false, nil
	}
	if err != nil {
		return Date{}, false, err
	}
	start, err := ParseDate(text)
	if err != nil {
		return Date{}, false, err
	}
	return start, true, nil
}

func (s *sqliteStore) SetCampaignStart(ctx context.Context, start Date) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO campaign(id, start_date) VALUES(1, ?)
		 ON CONFLICT(id) DO UPDATE SET start_date=excluded.start_date`,
		start.String(),
	)
	return err
}

func (s *sqliteStore) Executed(ctx context.Context, date Date) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM executions WHERE date = ?`, date.String()).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *sqliteStore) MarkExecuted(ctx context.Context, date Date, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO executions(date, executed_at) VALUES(?, ?)
		 ON CONFLICT(date) DO UPDATE SET executed_at=excluded.executed_at`,
		date.String(), markerText(at),
	)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
