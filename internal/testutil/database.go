// Package testutil provides shared helpers for tests that need a real
// database or realistic lot fixtures.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/meguinhazeromiseria/scraper-mega/internal/storage"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// TestDB bundles a migrated storage instance with the registry its schema
// was derived from.
type TestDB struct {
	Storage  *storage.SQLiteStorage
	Registry *taxonomy.Registry
	t        *testing.T
}

// SetupTestDB creates a file-backed SQLite database in a temp directory,
// runs migrations against the built-in taxonomy, and registers cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	reg, err := taxonomy.Default()
	if err != nil {
		t.Fatalf("failed to build taxonomy: %v", err)
	}

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "mega.db"), reg)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage:  store,
		Registry: reg,
		t:        t,
	}
}
