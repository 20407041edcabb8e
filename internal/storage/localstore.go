// Package storage provides a string-keyed JSON blob store persisted to a
// local directory, one file per key. Every write is a synchronous
// full-snapshot overwrite; there is no locking and no incremental append.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Keys under which the catalogue persists its collections.
const (
	KeyUsers       = "tripventure_users"
	KeyCurrentUser = "tripventure_current_user"
	KeyTrips       = "tripventure_trips"
)

// ErrMalformedData wraps decode failures on load. Callers are expected to
// log the error and fall back to seed data rather than surface it.
var ErrMalformedData = errors.New("malformed persisted data")

// Store reads and writes JSON blobs under a single directory.
type Store struct {
	dir string
}

// New creates the backing directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// GetItem decodes the blob stored under key into v. It reports false with a
// nil error when no blob exists, and an ErrMalformedData-wrapped error when
// the blob does not decode.
func (s *Store) GetItem(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrMalformedData, key, err)
	}
	return true, nil
}

// SetItem overwrites the blob stored under key with the JSON encoding of v.
func (s *Store) SetItem(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the blob stored under key. Removing an absent key is
// not an error.
func (s *Store) RemoveItem(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
