package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/cardsearch/internal/testutil"
)

// createTestStore creates a new file-backed store for testing.
func createTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

// importFixtures writes the fixture corpus into s.
func importFixtures(t *testing.T, s *Store) {
	t.Helper()
	cards, catalog := testutil.LoadCorpus(t)
	if err := s.Import(context.Background(), cards, catalog.Sets()); err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
}
