package todo

import (
	"errors"

	"github.com/thenoetrevino/hecho/internal/models"
)

// Todo-related errors
var (
	// Validation errors
	ErrEmptyTitle    = models.ErrEmptyTitle
	ErrTitleTooLong  = models.ErrTitleTooLong
	ErrTitleInvalid  = models.ErrTitleInvalid
	ErrInvalidTodoID = errors.New("invalid todo ID")
	ErrNoChanges     = errors.New("no changes requested")

	// Business logic errors
	ErrTodoNotFound = models.ErrTodoNotFound
)
