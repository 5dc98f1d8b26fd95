package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/hecho/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TodoRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TodoRepo: &TodoRepo{db: db},
		db:       db,
	}
}

// DB returns the underlying connection, used by the migration commands
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Wrapper methods for TodoRepo to satisfy DataStore
func (r *Repository) CreateTodo(ctx context.Context, title string, completed *bool) (*models.TodoItem, error) {
	return r.TodoRepo.Create(ctx, title, completed)
}

func (r *Repository) GetTodoByID(ctx context.Context, id int) (*models.TodoItem, error) {
	return r.TodoRepo.GetByID(ctx, id)
}

func (r *Repository) ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.TodoItem, error) {
	return r.TodoRepo.List(ctx, filter)
}

func (r *Repository) GetTodoStats(ctx context.Context) (*models.TodoStats, error) {
	return r.TodoRepo.Stats(ctx)
}

func (r *Repository) UpdateTodo(ctx context.Context, id int, title string, completed bool) error {
	return r.TodoRepo.Update(ctx, id, title, completed)
}

func (r *Repository) DeleteTodo(ctx context.Context, id int) error {
	return r.TodoRepo.Delete(ctx, id)
}

var _ DataStore = (*Repository)(nil)
