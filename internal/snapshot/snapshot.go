// Package snapshot keeps the client's copy of the last successfully
// fetched record list, persisted so sort operations work without a
// round trip to the service.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"filmbox/internal/catalog"
)

// Snapshot is the client-owned record cache. It is replaced wholesale on
// every successful fetch and never written by the service.
type Snapshot struct {
	path string

	records   []catalog.Record
	fetchedAt time.Time
}

type snapshotFile struct {
	FetchedAt time.Time        `json:"fetched_at"`
	Records   []catalog.Record `json:"records"`
}

// New creates a snapshot backed by the given cache file. An empty path
// disables persistence; the snapshot then lives in memory only.
func New(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Load reads the persisted snapshot. A missing or corrupt file leaves
// the snapshot empty without error.
func (s *Snapshot) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil
	}
	s.records = file.Records
	s.fetchedAt = file.FetchedAt
	return nil
}

// Replace swaps in a freshly fetched record list and persists it.
func (s *Snapshot) Replace(records []catalog.Record) error {
	s.records = records
	s.fetchedAt = time.Now().UTC()
	return s.save()
}

// Records returns a copy of the cached list in its fetched order.
func (s *Snapshot) Records() []catalog.Record {
	out := make([]catalog.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of cached records.
func (s *Snapshot) Len() int { return len(s.records) }

// FetchedAt returns when the cached list was fetched, zero when empty.
func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }

func (s *Snapshot) save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(snapshotFile{
		FetchedAt: s.fetchedAt,
		Records:   s.records,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}
