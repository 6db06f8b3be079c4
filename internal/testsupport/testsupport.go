// Package testsupport provides builders shared by tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"filmbox/internal/catalog"
	"filmbox/internal/config"
)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StorePath = filepath.Join(base, "films.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.SnapshotPath = filepath.Join(base, "snapshot.json")
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Client.InitialDelay = 0
	cfg.Client.RetryDelay = 0
	return &cfg
}

// WriteStore writes records to path as the store JSON document.
func WriteStore(t testing.TB, path string, records []catalog.Record) {
	t.Helper()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal store: %v", err)
	}
	writeFile(t, path, data)
}

// WriteRawStore writes arbitrary bytes to path, for legacy-shaped or
// corrupt store fixtures.
func WriteRawStore(t testing.TB, path string, data []byte) {
	t.Helper()
	writeFile(t, path, data)
}

// SeedRecords returns three records with ids 1-3 in legacy field naming,
// matching the historical store layout.
func SeedRecords() []byte {
	return []byte(`[
  {"id": 1, "name": "The Shawshank Redemption", "publication_date": "1994", "author": "Frank Darabont", "category": "Drama"},
  {"id": "2", "name": "The Godfather", "publication_date": "1972", "author": "Francis Ford Coppola", "category": "Crime"},
  {"id": 3, "name": "Pulp Fiction", "year": 1994, "director": "Quentin Tarantino", "category": "Crime"}
]`)
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
