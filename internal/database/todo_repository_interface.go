package database

import (
	"context"

	"github.com/thenoetrevino/hecho/internal/models"
)

// TodoRepository defines all to-do item persistence operations
type TodoRepository interface {
	// Read operations
	GetTodoByID(ctx context.Context, id int) (*models.TodoItem, error)
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.TodoItem, error)
	GetTodoStats(ctx context.Context) (*models.TodoStats, error)

	// Write operations
	CreateTodo(ctx context.Context, title string, completed *bool) (*models.TodoItem, error)
	UpdateTodo(ctx context.Context, id int, title string, completed bool) error
	DeleteTodo(ctx context.Context, id int) error
}
