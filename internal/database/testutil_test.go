package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with every migration applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })

	_, err = Migrate(context.Background(), db, MigrateOptions{})
	require.NoError(t, err, "Failed to run migrations")

	return db
}

// setupTestDBFile creates a file-based database for persistence across reopen
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "hecho-test.db")
}

func boolPtr(b bool) *bool {
	return &b
}
