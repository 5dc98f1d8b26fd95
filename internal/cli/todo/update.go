package todo

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
	todoservice "github.com/thenoetrevino/hecho/internal/services/todo"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a to-do item",
		Long: `Update the title or completion state of a to-do item.
Only the flags that are given change.

Examples:
  hecho todo update 3 --title="Buy oat milk"
  hecho todo update 3 --completed=false
`,
		RunE: handler.SimpleCommand(handler.ExactArgs(1, handler.HandlerFunc(runUpdate))),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Bool("completed", false, "New completion state")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseTodoID(args)
	if err != nil {
		return nil, err
	}

	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	item, err := c.App.TodoService.UpdateTodo(ctx, todoservice.UpdateTodoRequest{
		ID:        id,
		Title:     args.OptionalString("title"),
		Completed: args.OptionalBool("completed"),
	})
	if err != nil {
		return nil, err
	}

	return &itemResult{TodoItem: item, message: "Updated to-do item"}, nil
}
