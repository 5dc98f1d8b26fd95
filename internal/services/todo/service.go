// Package todo holds the business rules for to-do items
package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/models"
	"github.com/thenoetrevino/hecho/internal/types"
)

// Service defines all to-do business operations
type Service interface {
	// Read operations
	GetTodo(ctx context.Context, id types.TodoID) (*models.TodoItem, error)
	ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.TodoItem, error)
	Stats(ctx context.Context) (*models.TodoStats, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.TodoItem, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.TodoItem, error)
	CompleteTodo(ctx context.Context, id types.TodoID) (*models.TodoItem, error)
	DeleteTodo(ctx context.Context, id types.TodoID) error
}

// CreateTodoRequest encapsulates data for creating an item.
// A nil Completed takes the storage default (open).
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Completed *bool  `json:"completed,omitempty"`
}

// UpdateTodoRequest encapsulates a partial update
type UpdateTodoRequest struct {
	ID        types.TodoID
	Title     *string
	Completed *bool
}

type service struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// NewService creates a new todo service
func NewService(repo database.TodoRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger.With("component", "todo_service"),
	}
}

// GetTodo retrieves a single item
func (s *service) GetTodo(ctx context.Context, id types.TodoID) (*models.TodoItem, error) {
	if !id.Valid() {
		return nil, ErrInvalidTodoID
	}
	return s.repo.GetTodoByID(ctx, id.ToInt())
}

// ListTodos retrieves items matching the filter
func (s *service) ListTodos(ctx context.Context, filter models.TodoFilter) ([]*models.TodoItem, error) {
	return s.repo.ListTodos(ctx, filter)
}

// Stats counts open and completed items
func (s *service) Stats(ctx context.Context) (*models.TodoStats, error) {
	return s.repo.GetTodoStats(ctx)
}

// CreateTodo validates and stores a new item
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.TodoItem, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	item, err := s.repo.CreateTodo(ctx, req.Title, req.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("todo created", "todo_id", item.ID)
	return item, nil
}

// UpdateTodo applies the non-nil fields of req
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.TodoItem, error) {
	if !req.ID.Valid() {
		return nil, ErrInvalidTodoID
	}
	if req.Title == nil && req.Completed == nil {
		return nil, ErrNoChanges
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetTodoByID(ctx, req.ID.ToInt())
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if req.Title != nil {
		title = *req.Title
	}
	completed := existing.Completed
	if req.Completed != nil {
		completed = *req.Completed
	}

	if err := s.repo.UpdateTodo(ctx, req.ID.ToInt(), title, completed); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	s.logger.Debug("todo updated", "todo_id", req.ID.ToInt())
	return s.repo.GetTodoByID(ctx, req.ID.ToInt())
}

// CompleteTodo marks an item as done
func (s *service) CompleteTodo(ctx context.Context, id types.TodoID) (*models.TodoItem, error) {
	done := true
	return s.UpdateTodo(ctx, UpdateTodoRequest{ID: id, Completed: &done})
}

// DeleteTodo removes an item
func (s *service) DeleteTodo(ctx context.Context, id types.TodoID) error {
	if !id.Valid() {
		return ErrInvalidTodoID
	}
	if err := s.repo.DeleteTodo(ctx, id.ToInt()); err != nil {
		if errors.Is(err, ErrTodoNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.logger.Debug("todo deleted", "todo_id", id.ToInt())
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.ContainsRune(title, 0) {
		return ErrTitleInvalid
	}
	if models.TitleLength(title) > models.TitleMaxLength {
		return ErrTitleTooLong
	}
	return nil
}
