package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/hecho/internal/database"
)

// SetupTestDB creates an in-memory database migrated to the latest schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.Migrate(ctx, db, database.MigrateOptions{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// SetupUnmigratedDB creates an in-memory database with no schema applied
func SetupUnmigratedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTodo inserts a to-do item directly and returns its ID
func CreateTestTodo(t *testing.T, db *sql.DB, title string, completed bool) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todo_items (title, completed) VALUES (?, ?)", title, completed)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	todoID, _ := result.LastInsertId()
	return int(todoID)
}
