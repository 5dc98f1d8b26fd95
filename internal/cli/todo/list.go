package todo

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List to-do items",
		Long:  "List to-do items in creation order, optionally only completed or only open ones.",
		RunE:  handler.SimpleCommand(handler.NoArgs(handler.HandlerFunc(runList))),
	}

	cmd.Flags().Bool("completed", false, "Only completed items")
	cmd.Flags().Bool("open", false, "Only open items")

	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	filter, err := handler.ParseCompletedFilter(args)
	if err != nil {
		return nil, err
	}

	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	items, err := c.App.TodoService.ListTodos(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &listResult{Items: items}, nil
}
