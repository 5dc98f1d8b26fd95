// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/models"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (any, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
	cli   *cli.CLI
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// CLI returns the application context, initializing it on first use
func (a *Arguments) CLI(ctx context.Context) (*cli.CLI, error) {
	if a.cli != nil {
		return a.cli, nil
	}
	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a.cli = c
	return c, nil
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, parseFlags func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:  jsonOutput,
			Quiet: quietMode,
			Out:   cmd.OutOrStdout(),
			Err:   cmd.ErrOrStderr(),
		}

		// Parse flags
		if err := parseFlags(cmd); err != nil {
			return report(formatter, err)
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}
		defer func() {
			if arguments.cli == nil {
				return
			}
			if err := arguments.cli.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		// Execute handler
		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return report(formatter, err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// ExactArgs wraps h so a wrong positional argument count is reported like any
// other usage error, JSON envelope included. Set it instead of cobra's Args.
func ExactArgs(n int, h Handler) Handler {
	return HandlerFunc(func(ctx context.Context, args *Arguments) (any, error) {
		if err := cli.ExactArgs(n)(args.cmd, args.Args); err != nil {
			return nil, err
		}
		return h.Execute(ctx, args)
	})
}

// NoArgs is ExactArgs(0, h)
func NoArgs(h Handler) Handler {
	return ExactArgs(0, h)
}

// SimpleCommand wraps command execution with minimal setup
// Use this for commands that don't need complex flag parsing
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, func(cmd *cobra.Command) error {
		return nil
	})
}

// report writes err in the requested format and marks it as reported
func report(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.ErrorWithSuggestion(cli.ErrorCode(err), err.Error(), suggestionFor(err)); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &cli.CommandError{Code: cli.ExitCode(err), Err: err, Reported: true}
}

func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrTodoNotFound):
		return "Use 'hecho todo list' to see available to-do items"
	case errors.Is(err, database.ErrPendingMigrations):
		return "Run 'hecho migrate' to bring the database schema up to date"
	default:
		return ""
	}
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the flag was explicitly set
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// OptionalString returns a pointer to the flag value, or nil when unset
func (a *Arguments) OptionalString(name string) *string {
	if !a.Has(name) {
		return nil
	}
	v := a.GetString(name, "")
	return &v
}

// OptionalBool returns a pointer to the flag value, or nil when unset
func (a *Arguments) OptionalBool(name string) *bool {
	if !a.Has(name) {
		return nil
	}
	v := a.GetBool(name)
	return &v
}
