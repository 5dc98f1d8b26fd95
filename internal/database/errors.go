package database

import "errors"

var (
	// ErrPendingMigrations is returned by EnsureCurrent when the schema is behind
	ErrPendingMigrations = errors.New("database schema is out of date, run 'hecho migrate'")

	// ErrUnknownMigration indicates a target number that is not in the migration list
	ErrUnknownMigration = errors.New("unknown migration number")
)
