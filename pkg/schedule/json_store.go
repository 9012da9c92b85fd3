package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const StateFile = "schedule_state.json"

type jsonState struct {
	StartDate string            `json:"start_date,omitempty"`
	Executed  map[string]string `json:"executed"`
}

// jsonStore keeps all state in one JSON document, replaced atomically on every write.
type jsonStore struct {
	path string
	lock sync.Mutex
}

func newJSONStore(dir string) *jsonStore {
	return &jsonStore{path: filepath.Join(dir, StateFile)}
}

func (s *jsonStore) load() (*jsonState, error) {
	state := &jsonState{Executed: make(map[string]string)}
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(state); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if state.Executed == nil {
		state.Executed = make(map[string]string)
	}
	return state, nil
}

func (s *jsonStore) save(state *jsonState) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".schedule_state-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(state); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *jsonStore) update(fn func(*jsonState)) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	fn(state)
	return s.save(state)
}

func (s *jsonStore) CampaignStart(ctx context.Context) (Date, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	state, err := s.load()
	if err != nil {
		return Date{}, false, err
	}
	if state.StartDate == "" {
		return Date{}, false, nil
	}
	start, err := ParseDate(state.StartDate)
	if err != nil {
		return Date{}, false, err
	}
	return start, true, nil
}

func (s *jsonStore) SetCampaignStart(ctx context.Context, start Date) error {
	return s.update(func(state *jsonState) {
		state.StartDate = start.String()
	})
}

func (s *jsonStore) Executed(ctx context.Context, date Date) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	state, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := state.Executed[date.String()]
	return ok, nil
}

func (s *jsonStore) MarkExecuted(ctx context.Context, date Date, at time.Time) error {
	return s.update(func(state *jsonState) {
		state.Executed[date.String()] = markerText(at)
	})
}

func (s *jsonStore) Close() error {
	return nil
}
