package todo

import (
	"context"
	"errors"
	"fmt"
	"os"

	"charm.land/huh/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
	"github.com/thenoetrevino/hecho/internal/cli/styles"
	"github.com/thenoetrevino/hecho/internal/models"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a to-do item",
		Long: `Delete a to-do item. Asks for confirmation first unless --force,
--quiet or --json is given.

Examples:
  hecho todo delete 3
  hecho todo delete 3 --force
`,
		RunE: handler.SimpleCommand(handler.ExactArgs(1, handler.HandlerFunc(runDelete))),
	}

	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")

	handler.AddOutputFlags(cmd)

	return cmd
}

// confirmDelete asks before an item is removed
var confirmDelete = promptDelete

func promptDelete(cmd *cobra.Command, item *models.TodoItem) (bool, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) {
		return false, fmt.Errorf("%w: no terminal to confirm the delete, pass --force", cli.ErrUsage)
	}

	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete to-do item %d %q?", item.ID, item.Title)).
			Affirmative("Yes").
			Negative("No").
			Value(&confirm),
	)).WithTheme(styles.FormTheme).WithInput(in).WithOutput(cmd.ErrOrStderr())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirm, nil
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := handler.ParseTodoID(args)
	if err != nil {
		return nil, err
	}

	c, err := args.CLI(ctx)
	if err != nil {
		return nil, err
	}

	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		item, err := c.App.TodoService.GetTodo(ctx, id)
		if err != nil {
			return nil, err
		}
		ok, err := confirmDelete(args.GetCmd(), item)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &deleteResult{ID: id.ToInt()}, nil
		}
	}

	if err := c.App.TodoService.DeleteTodo(ctx, id); err != nil {
		return nil, err
	}

	return &deleteResult{ID: id.ToInt(), Deleted: true}, nil
}
