package todo

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
)

// DoneCmd returns the todo done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a to-do item as completed",
		RunE:  handler.SimpleCommand(handler.ExactArgs(1, handler.HandlerFunc(runDone))),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runDone(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseTodoID(args)
	if err != nil {
		return nil, err
	}

	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	item, err := c.App.TodoService.CompleteTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	return &itemResult{TodoItem: item, message: "Completed to-do item"}, nil
}
