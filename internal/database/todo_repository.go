package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/hecho/internal/models"
)

// CHECK constraints on todo_items.title
const (
	titleConstraint    = "title_length"
	titleNULConstraint = "title_no_nul"
)

// TodoRepo handles all to-do item persistence
type TodoRepo struct {
	db *sql.DB
}

const selectTodoColumns = `SELECT id, title, completed, created_at, updated_at FROM todo_items`

// Create inserts a new item. A nil completed leaves the column default in place.
func (r *TodoRepo) Create(ctx context.Context, title string, completed *bool) (*models.TodoItem, error) {
	var (
		result sql.Result
		err    error
	)
	if completed == nil {
		result, err = r.db.ExecContext(ctx,
			`INSERT INTO todo_items (title) VALUES (?)`,
			title,
		)
	} else {
		result, err = r.db.ExecContext(ctx,
			`INSERT INTO todo_items (title, completed) VALUES (?, ?)`,
			title, *completed,
		)
	}
	if err != nil {
		return nil, translateWriteError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get todo item ID: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single item
func (r *TodoRepo) GetByID(ctx context.Context, id int) (*models.TodoItem, error) {
	item := &models.TodoItem{}
	err := r.db.QueryRowContext(ctx, selectTodoColumns+` WHERE id = ?`, id).Scan(
		&item.ID, &item.Title, &item.Completed, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("todo item %d: %w", id, models.ErrTodoNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns items in insertion order, optionally filtered by completion
func (r *TodoRepo) List(ctx context.Context, filter models.TodoFilter) ([]*models.TodoItem, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Completed != nil {
		rows, err = r.db.QueryContext(ctx,
			selectTodoColumns+` WHERE completed = ? ORDER BY id`,
			*filter.Completed,
		)
	} else {
		rows, err = r.db.QueryContext(ctx, selectTodoColumns+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.TodoItem{}
	for rows.Next() {
		item := &models.TodoItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Completed, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Stats counts all, open and completed items
func (r *TodoRepo) Stats(ctx context.Context) (*models.TodoStats, error) {
	stats := &models.TodoStats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)
		FROM todo_items
	`).Scan(&stats.Total, &stats.Done)
	if err != nil {
		return nil, err
	}
	stats.Open = stats.Total - stats.Done
	return stats, nil
}

// Update overwrites an item's title and completion state
func (r *TodoRepo) Update(ctx context.Context, id int, title string, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE todo_items SET title = ?, completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		title, completed, id,
	)
	if err != nil {
		return translateWriteError(err)
	}
	return requireRow(result, id)
}

// Delete removes an item
func (r *TodoRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todo_items WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

func requireRow(result sql.Result, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("todo item %d: %w", id, models.ErrTodoNotFound)
	}
	return nil
}

// translateWriteError maps constraint failures onto domain errors
func translateWriteError(err error) error {
	if isCheckViolation(err, titleConstraint) {
		return fmt.Errorf("%w: %w", models.ErrTitleTooLong, err)
	}
	if isCheckViolation(err, titleNULConstraint) {
		return fmt.Errorf("%w: %w", models.ErrTitleInvalid, err)
	}
	return err
}
