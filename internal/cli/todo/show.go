package todo

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
)

// ShowCmd returns the todo show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a to-do item",
		RunE:  handler.SimpleCommand(handler.ExactArgs(1, handler.HandlerFunc(runShow))),
	}

	handler.AddOutputFlags(cmd)

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseTodoID(args)
	if err != nil {
		return nil, err
	}

	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	item, err := c.App.TodoService.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	return &itemResult{TodoItem: item}, nil
}
