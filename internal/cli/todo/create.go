package todo

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
)

// CreateCmd returns the todo create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new to-do item",
		Long: `Create a new to-do item.

Examples:
  # Simple item (human-readable output)
  hecho todo create --title="Buy milk"

  # JSON output for scripts
  hecho todo create --title="Buy milk" --json

  # Quiet mode for bash capture
  TODO_ID=$(hecho todo create --title="Buy milk" --quiet)
`,
		RunE: handler.Command(handler.NoArgs(handler.HandlerFunc(runCreate)), handler.RequireFlags("title")),
	}

	// Required flags
	cmd.Flags().String("title", "", "Item title, at most 200 characters (required)")

	// Optional flags
	cmd.Flags().Bool("completed", false, "Create the item already completed")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	item, err := c.App.TodoService.CreateTodo(ctx, todoservice.CreateTodoRequest{
		Title:     args.GetString("title", ""),
		Completed: args.OptionalBool("completed"),
	})
	if err != nil {
		return nil, err
	}

	return &itemResult{TodoItem: item, message: "Created to-do item"}, nil
}
