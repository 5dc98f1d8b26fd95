// Package cmd assembles the hecho command tree
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/cli/migrate"
	"github.com/thenoetrevino/hecho/internal/cli/routes"
	"github.com/thenoetrevino/hecho/internal/cli/serve"
	"github.com/thenoetrevino/hecho/internal/cli/styles"
	"github.com/thenoetrevino/hecho/internal/cli/todo"
	"github.com/thenoetrevino/hecho/internal/config"
	"github.com/thenoetrevino/hecho/internal/logging"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "hecho",
		Short: "Hecho - a small to-do web backend",
		Long: `Hecho stores to-do items in SQLite and serves them over HTTP.

Run 'hecho migrate' once to create the schema, then 'hecho serve'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			closer, err := logging.Init(cfg.Log)
			if err != nil {
				return err
			}
			logCloser = closer

			styles.Init(cfg.ColorScheme)
			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}
			return logCloser.Close()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/hecho/config.yaml)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(migrate.MigrateCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(routes.RoutesCmd())
	rootCmd.AddCommand(todo.TodoCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	slog.Debug("loading config", "path", path)
	return config.LoadFile(path)
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
