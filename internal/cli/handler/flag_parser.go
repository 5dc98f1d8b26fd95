// Package handler provides flag parsing utilities
package handler

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/models"
	"github.com/thenoetrevino/hecho/internal/types"
)

// ParseTodoID extracts the to-do ID from the first positional argument
func ParseTodoID(args *Arguments) (types.TodoID, error) {
	if len(args.Args) == 0 {
		return 0, fmt.Errorf("%w: missing todo ID", cli.ErrUsage)
	}
	return cli.ParseTodoID(args.Args[0])
}

// ParseCompletedFilter builds a listing filter from --completed / --open
func ParseCompletedFilter(args *Arguments) (models.TodoFilter, error) {
	completed := args.GetBool("completed")
	open := args.GetBool("open")
	if completed && open {
		return models.TodoFilter{}, fmt.Errorf("%w: --completed and --open are mutually exclusive", cli.ErrUsage)
	}

	var filter models.TodoFilter
	switch {
	case completed:
		v := true
		filter.Completed = &v
	case open:
		v := false
		filter.Completed = &v
	}
	return filter, nil
}

// RequireFlags returns a parseFlags func that fails with a usage error when
// any of the named flags was not given
func RequireFlags(names ...string) func(*cobra.Command) error {
	return func(cmd *cobra.Command) error {
		for _, name := range names {
			if !cmd.Flags().Changed(name) {
				return fmt.Errorf("%w: required flag \"--%s\" not set", cli.ErrUsage, name)
			}
		}
		return nil
	}
}

// AddOutputFlags registers the --json and --quiet flags every data command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
