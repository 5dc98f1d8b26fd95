package models

import "errors"

// Domain errors shared by the storage and service layers
var (
	// ErrTodoNotFound indicates that no item exists with the given ID
	ErrTodoNotFound = errors.New("todo item not found")

	// ErrTitleTooLong indicates a title over TitleMaxLength characters
	ErrTitleTooLong = errors.New("title cannot exceed 200 characters")

	// ErrEmptyTitle indicates a missing title
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleInvalid indicates a title holding a NUL character
	ErrTitleInvalid = errors.New("title cannot contain NUL characters")
)
