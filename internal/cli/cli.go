// Package cli holds the shared plumbing for the hecho commands
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/hecho/internal/app"
	"github.com/thenoetrevino/hecho/internal/config"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	repo   *database.Repository
	owned  bool // Close releases the database only when the CLI opened it
}

// NewCLI opens the configured database and builds the application. The schema
// must be current; run 'hecho migrate' first.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.EnsureCurrent(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c, err := NewCLIWithRepository(database.NewRepository(db), cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	c.owned = true
	return c, nil
}

// NewCLIWithRepository wraps an already-open repository. Close leaves the
// repository open; the caller owns it.
func NewCLIWithRepository(repo *database.Repository, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	logger := logging.Logger
	opts := []app.Option{}
	if logger != nil {
		opts = append(opts, app.WithLogger(logger))
	}

	application, err := app.New(repo, opts...)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		repo:   repo,
	}, nil
}

// Repository exposes the database for commands that work below the service layer
func (c *CLI) Repository() *database.Repository {
	return c.repo
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// OpenDB returns the database of an injected CLI, or opens the configured one
// without checking the schema. The returned func releases what OpenDB opened.
func OpenDB(ctx context.Context) (*sql.DB, func() error, error) {
	if c, ok := LookupCLI(ctx); ok {
		return c.Repository().DB(), func() error { return nil }, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, db.Close, nil
}
