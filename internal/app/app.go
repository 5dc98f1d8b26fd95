package app

import (
	"log/slog"

	"github.com/thenoetrevino/hecho/internal/database"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
	"github.com/thenoetrevino/hecho/internal/web"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service

	// HTTP surface built on the services
	Site *web.Site
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	todos := todoservice.NewService(repo, cfg.logger)
	site, err := web.NewSite(todos, cfg.logger)
	if err != nil {
		return nil, err
	}

	return &App{
		repo:        repo,
		logger:      cfg.logger,
		TodoService: todos,
		Site:        site,
	}, nil
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the repository when it owns a connection
func (a *App) Close() error {
	if closer, ok := a.repo.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
