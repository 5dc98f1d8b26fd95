package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/hecho/internal/types"
)

// Migration is one forward-only schema change
type Migration struct {
	Number types.MigrationNumber
	Name   string
	Up     string
}

// MigrateOptions controls a Migrate run
type MigrateOptions struct {
	// Target is the last migration to apply; zero means the latest
	Target types.MigrationNumber
	// DryRun reports the pending migrations without applying them
	DryRun bool
}

// Migrations is the ordered schema history. Append only.
var Migrations = []Migration{
	{
		Number: 1,
		Name:   "create todo_items",
		Up: `
		CREATE TABLE IF NOT EXISTS todo_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT title_length CHECK (length(title) <= 200)
		);
		`,
	},
	{
		Number: 2,
		Name:   "index todo_items by completed",
		Up: `
		CREATE INDEX IF NOT EXISTS idx_todo_items_completed
		ON todo_items(completed, id);
		`,
	},
	{
		// length() stops at the first NUL, so title_length alone lets long
		// NUL-bearing titles through. Existing titles are cut at their first NUL.
		Number: 3,
		Name:   "reject NUL in todo_items.title",
		Up: `
		CREATE TABLE todo_items_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT title_length CHECK (length(title) <= 200),
			CONSTRAINT title_no_nul CHECK (instr(CAST(title AS BLOB), x'00') = 0)
		);

		INSERT INTO todo_items_new (id, title, completed, created_at, updated_at)
		SELECT id,
			CASE WHEN instr(CAST(title AS BLOB), x'00') > 0
				THEN CAST(substr(CAST(title AS BLOB), 1, instr(CAST(title AS BLOB), x'00') - 1) AS TEXT)
				ELSE title
			END,
			completed, created_at, updated_at
		FROM todo_items;

		DELETE FROM sqlite_sequence WHERE name = 'todo_items_new';
		INSERT INTO sqlite_sequence (name, seq)
		SELECT 'todo_items_new', seq FROM sqlite_sequence WHERE name = 'todo_items';

		DROP TABLE todo_items;
		ALTER TABLE todo_items_new RENAME TO todo_items;

		CREATE INDEX IF NOT EXISTS idx_todo_items_completed
		ON todo_items(completed, id);
		`,
	},
}

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		number INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// latestMigration returns the highest known migration number
func latestMigration() types.MigrationNumber {
	sorted := sortedMigrations()
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)-1].Number
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("unable to create schema_migrations table: %w", err)
	}
	return nil
}

func migrationsTableExists(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations'",
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("unable to inspect schema: %w", err)
	}
	return n > 0, nil
}

// CurrentVersion returns the highest applied migration number, or zero on a
// fresh database. It never writes to the database.
func CurrentVersion(ctx context.Context, db *sql.DB) (types.MigrationNumber, error) {
	exists, err := migrationsTableExists(ctx, db)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var current sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(number) FROM schema_migrations").Scan(&current); err != nil {
		return 0, fmt.Errorf("unable to find latest migration: %w", err)
	}
	if !current.Valid {
		return 0, nil
	}
	return types.MigrationNumber(current.Int64), nil
}

// Pending lists the migrations that have not been applied yet, in order
func Pending(ctx context.Context, db *sql.DB) ([]Migration, error) {
	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	var pending []Migration
	for _, m := range sortedMigrations() {
		if m.Number > current {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// EnsureCurrent returns ErrPendingMigrations when migrations remain to be applied
func EnsureCurrent(ctx context.Context, db *sql.DB) error {
	pending, err := Pending(ctx, db)
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w (%d pending)", ErrPendingMigrations, len(pending))
	}
	return nil
}

// Migrate applies pending migrations up to opts.Target and returns the ones it
// applied (or would apply, on a dry run). A dry run leaves the database
// untouched. Backwards migrations are not
// supported: a target at or below the current version does nothing.
func Migrate(ctx context.Context, db *sql.DB, opts MigrateOptions) ([]Migration, error) {
	target := opts.Target
	if target == 0 {
		target = latestMigration()
	}
	if target != 0 && !slices.ContainsFunc(Migrations, func(m Migration) bool { return m.Number == target }) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMigration, target)
	}

	if !opts.DryRun {
		if err := ensureMigrationsTable(ctx, db); err != nil {
			return nil, err
		}
	}

	pending, err := Pending(ctx, db)
	if err != nil {
		return nil, err
	}

	var applied []Migration
	for _, m := range pending {
		if m.Number > target {
			break
		}

		logger := slog.With("migration_number", m.Number.ToInt(), "migration_name", m.Name)
		if opts.DryRun {
			logger.Info("would apply migration")
			applied = append(applied, m)
			continue
		}

		logger.Info("applying migration")
		err := withTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.Up); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (number, name) VALUES (?, ?)",
				m.Number.ToInt(), m.Name,
			)
			return err
		})
		if err != nil {
			logger.Error("unable to apply migration, rolled back", "error", err)
			return applied, fmt.Errorf("migration %d (%s): %w", m.Number, m.Name, err)
		}
		applied = append(applied, m)
	}

	return applied, nil
}

func sortedMigrations() []Migration {
	sorted := slices.Clone(Migrations)
	slices.SortFunc(sorted, func(a, b Migration) int {
		return int(a.Number - b.Number)
	})
	return sorted
}
