package cli

import (
	"errors"

	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/models"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or a schema that needs 'hecho migrate' first.
	ExitUsage = 2

	// ExitNotFound indicates a requested to-do item was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Empty, too long or NUL-bearing titles, invalid IDs.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error
	// Reported is set once the error has been written to the user
	Reported bool
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command onto an exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, models.ErrTodoNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, models.ErrTitleTooLong),
		errors.Is(err, models.ErrTitleInvalid),
		errors.Is(err, todoservice.ErrInvalidTodoID),
		errors.Is(err, todoservice.ErrNoChanges):
		return ExitValidation
	case errors.Is(err, database.ErrPendingMigrations),
		errors.Is(err, database.ErrUnknownMigration),
		errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "TODO_NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}
