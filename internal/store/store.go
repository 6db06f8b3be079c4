// Package store persists the catalog as a single JSON document on disk.
//
// Every operation reads the full store fresh from disk and mutating
// operations rewrite the whole file, so within one process readers always
// observe their own writes. A flock around the read-modify-write cycle
// keeps concurrent mutations from losing each other's effect; the
// external contract is unchanged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"filmbox/internal/catalog"
	"filmbox/internal/logging"
)

const lockRetryInterval = 50 * time.Millisecond

// Store provides access to the on-disk catalog.
type Store struct {
	path   string
	logger *slog.Logger
	lock   *flock.Flock
}

// New creates a store backed by the JSON document at path. The file is
// created lazily on the first mutation.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "store"),
		lock:   flock.New(path + ".lock"),
	}
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// List returns every record in insertion order.
func (s *Store) List(ctx context.Context) ([]catalog.Record, error) {
	unlock, err := s.acquireShared(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.load(), nil
}

// ByCategory returns the records whose category equals the given one,
// compared case-insensitively. An empty result is not an error.
func (s *Store) ByCategory(ctx context.Context, category string) ([]catalog.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if rec.MatchesCategory(category) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// FindByName returns the records whose name matches exactly,
// case-insensitively.
func (s *Store) FindByName(ctx context.Context, name string) ([]catalog.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if rec.MatchesName(name) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Search returns the records whose name or director contains the query,
// case-insensitively.
func (s *Store) Search(ctx context.Context, query string) ([]catalog.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		if rec.MatchesQuery(query) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// Get returns the record with the given id or catalog.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (*catalog.Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, catalog.ErrNotFound
}

// Create appends a new record with a service-assigned id and creation
// timestamp and persists the store.
func (s *Store) Create(ctx context.Context, draft catalog.Draft) (*catalog.Record, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	unlock, err := s.acquireExclusive(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records := s.load()
	rec := catalog.Record{
		ID:          nextID(records),
		Name:        draft.Name,
		Year:        draft.Year,
		Director:    draft.Director,
		Category:    draft.Category,
		Runtime:     draft.Runtime,
		Description: draft.Description,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	records = append(records, rec)

	if err := s.save(records); err != nil {
		return nil, err
	}

	s.logger.Info("record created",
		logging.Int64("id", rec.ID),
		logging.String("name", rec.Name),
		logging.String("category", rec.Category))
	return &rec, nil
}

// Delete removes the record whose id matches the given value. The id is
// compared as a string so stores holding either integer or string ids
// are handled alike. Returns the removed record.
func (s *Store) Delete(ctx context.Context, id string) (*catalog.Record, error) {
	id = strings.TrimSpace(id)

	unlock, err := s.acquireExclusive(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records := s.load()
	index := -1
	for i, rec := range records {
		if strconv.FormatInt(rec.ID, 10) == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, catalog.ErrNotFound
	}

	removed := records[index]
	records = append(records[:index], records[index+1:]...)

	if err := s.save(records); err != nil {
		return nil, err
	}

	s.logger.Info("record deleted",
		logging.Int64("id", removed.ID),
		logging.String("name", removed.Name))
	return &removed, nil
}

// EnsureSeed writes the given records when the store file does not exist
// yet. An existing file, even an empty or corrupt one, is left alone.
func (s *Store) EnsureSeed(ctx context.Context, records []catalog.Record) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}

	unlock, err := s.acquireExclusive(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := s.save(records); err != nil {
		return err
	}
	s.logger.Info("seeded store", logging.Int("records", len(records)), logging.String("path", s.path))
	return nil
}

// nextID computes max existing id plus one, 1 for an empty store.
// Non-numeric ids were already collapsed to 0 during normalization.
func nextID(records []catalog.Record) int64 {
	var max int64
	for _, rec := range records {
		if rec.ID > max {
			max = rec.ID
		}
	}
	return max + 1
}

// load reads the whole store from disk. A missing or malformed file is
// treated as an empty store to keep the service available.
func (s *Store) load() []catalog.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read store file", logging.Error(err), logging.String("path", s.path))
		}
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var records []catalog.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("store file is not valid JSON, treating as empty",
			logging.Error(err),
			logging.String("path", s.path))
		return nil
	}
	return records
}

// save writes the store to disk atomically via a temp file, so a failed
// write leaves the previous content as the last observed state.
func (s *Store) save(records []catalog.Record) error {
	if records == nil {
		records = []catalog.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireExclusive(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	ok, err := s.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return nil, errors.New("store lock unavailable")
	}
	return func() { _ = s.lock.Unlock() }, nil
}

func (s *Store) acquireShared(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	ok, err := s.lock.TryRLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquire store read lock: %w", err)
	}
	if !ok {
		return nil, errors.New("store lock unavailable")
	}
	return func() { _ = s.lock.Unlock() }, nil
}
