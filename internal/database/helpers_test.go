package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Transaction Helper Tests
// ============================================================================

func countTodos(t *testing.T, db *sql.DB, title string) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM todo_items WHERE title = ?", title).Scan(&count); err != nil {
		t.Fatalf("Failed to count todos: %v", err)
	}
	return count
}

func TestWithTx_Success_Commit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Execute transaction that should commit
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO todo_items (title) VALUES (?)", "Committed")
		return err
	})
	if err != nil {
		t.Fatalf("Expected transaction to succeed, got error: %v", err)
	}

	if count := countTodos(t, db, "Committed"); count != 1 {
		t.Errorf("Expected 1 item, got %d", count)
	}
}

func TestWithTx_Error_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Execute transaction that should rollback
	expectedErr := errors.New("intentional error")
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO todo_items (title) VALUES (?)", "Rolled back"); err != nil {
			return err
		}
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Fatalf("Expected error %v, got %v", expectedErr, err)
	}

	if count := countTodos(t, db, "Rolled back"); count != 0 {
		t.Errorf("Expected 0 items (rollback), got %d", count)
	}
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	// Create a closed database to trigger begin error
	db := setupTestDB(t)
	_ = db.Close()

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("Expected error when beginning transaction on closed DB, got nil")
	}
}

// ============================================================================
// Constraint Error Tests
// ============================================================================

func TestIsCheckViolation(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.ExecContext(context.Background(),
		"INSERT INTO todo_items (title) VALUES (?)", strings.Repeat("a", 201))
	if err == nil {
		t.Fatal("Expected CHECK constraint failure, got nil")
	}

	if !isCheckViolation(err, "title_length") {
		t.Errorf("Expected a title_length CHECK violation, got %v", err)
	}
	if isCheckViolation(err, "some_other_constraint") {
		t.Error("Constraint name must be matched")
	}

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO todo_items (title) VALUES (?)", "a\x00"+strings.Repeat("b", 300))
	if !isCheckViolation(err, "title_no_nul") {
		t.Errorf("Expected a title_no_nul CHECK violation, got %v", err)
	}
}

func TestIsCheckViolation_OtherErrors(t *testing.T) {
	db := setupTestDB(t)

	// NOT NULL is a constraint error but not a CHECK failure
	_, err := db.ExecContext(context.Background(), "INSERT INTO todo_items (title) VALUES (NULL)")
	if err == nil {
		t.Fatal("Expected NOT NULL failure, got nil")
	}
	if isCheckViolation(err, "title_length") {
		t.Errorf("NOT NULL failure reported as CHECK violation: %v", err)
	}

	if isCheckViolation(errors.New("CHECK constraint failed: title_length"), "title_length") {
		t.Error("Only driver errors count")
	}
	if isCheckViolation(nil, "title_length") {
		t.Error("nil is not a violation")
	}
}
