package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/models"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
	"github.com/thenoetrevino/hecho/internal/types"
)

func TestParseTodoID(t *testing.T) {
	id, err := ParseTodoID("12")
	require.NoError(t, err)
	assert.Equal(t, types.TodoID(12), id)

	for _, arg := range []string{"", "abc", "1.5", "0", "-3"} {
		t.Run(arg, func(t *testing.T) {
			_, err := ParseTodoID(arg)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestExactArgs(t *testing.T) {
	validate := ExactArgs(1)
	cmd := &cobra.Command{Use: "show"}

	assert.NoError(t, validate(cmd, []string{"1"}))
	assert.ErrorIs(t, validate(cmd, nil), ErrUsage)
	assert.ErrorIs(t, validate(cmd, []string{"1", "2"}), ErrUsage)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		tag  string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"generic", errors.New("boom"), ExitError, "ERROR"},
		{"not found", fmt.Errorf("get: %w", models.ErrTodoNotFound), ExitNotFound, "TODO_NOT_FOUND"},
		{"title too long", models.ErrTitleTooLong, ExitValidation, "VALIDATION_ERROR"},
		{"title with NUL", models.ErrTitleInvalid, ExitValidation, "VALIDATION_ERROR"},
		{"empty title", models.ErrEmptyTitle, ExitValidation, "VALIDATION_ERROR"},
		{"invalid id", todoservice.ErrInvalidTodoID, ExitValidation, "VALIDATION_ERROR"},
		{"no changes", todoservice.ErrNoChanges, ExitValidation, "VALIDATION_ERROR"},
		{"pending migrations", fmt.Errorf("%w (2 pending)", database.ErrPendingMigrations), ExitUsage, "USAGE_ERROR"},
		{"unknown migration", database.ErrUnknownMigration, ExitUsage, "USAGE_ERROR"},
		{"usage", ErrUsage, ExitUsage, "USAGE_ERROR"},
		{"explicit", &CommandError{Code: ExitNotFound, Err: errors.New("x")}, ExitNotFound, "TODO_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCode(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.tag, ErrorCode(tt.err))
			}
		})
	}
}

func TestCommandError_Unwrap(t *testing.T) {
	err := &CommandError{Code: ExitNotFound, Err: fmt.Errorf("wrapped: %w", models.ErrTodoNotFound)}
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
	assert.Equal(t, "wrapped: todo item not found", err.Error())
}
