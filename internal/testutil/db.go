// Package testutil provides test utilities for database setup and deployment fixtures.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/eventregistry/internal/infrastructure/sqlite"
)

// NewTestDB creates a migrated SQLite database in a temporary directory.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
