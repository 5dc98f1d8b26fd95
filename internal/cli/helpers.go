package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/types"
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("usage error")

// ParseTodoID parses a positional to-do ID argument
func ParseTodoID(arg string) (types.TodoID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: todo ID must be a number, got %q", ErrUsage, arg)
	}
	todoID := types.TodoIDFromInt(id)
	if !todoID.Valid() {
		return 0, fmt.Errorf("%w: todo ID must be greater than 0, got %d", ErrUsage, id)
	}
	return todoID, nil
}

// ExactArgs is cobra.ExactArgs with the failure reported as a usage error
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
