// Package serve implements 'hecho serve'
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/web"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the to-do routes over HTTP until interrupted.

The database schema must be current. Run 'hecho migrate' first, or pass
--migrate to apply pending migrations on startup.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().Bool("migrate", false, "Apply pending migrations before serving")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr, _ := cmd.Flags().GetString("addr")
	migrate, _ := cmd.Flags().GetBool("migrate")

	c, err := prepare(ctx, migrate)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			c.App.Logger().Error("failed to close CLI", "error", err)
		}
	}()

	serverCfg := c.Config.Server
	if addr != "" {
		serverCfg.Addr = addr
	}

	site := c.App.Site
	server := web.NewServer(serverCfg, site.Handler, site.Metrics, c.App.Logger())
	return server.Run(ctx)
}

// prepare opens the database, migrating it when asked, and refuses to go on
// while migrations are pending
func prepare(ctx context.Context, migrate bool) (*cli.CLI, error) {
	if c, ok := cli.LookupCLI(ctx); ok {
		if err := checkSchema(ctx, c, migrate); err != nil {
			return nil, err
		}
		return c, nil
	}

	cfg, err := cli.ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if migrate {
		if _, err := database.Migrate(ctx, db, database.MigrateOptions{}); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	_ = db.Close()

	return cli.NewCLI(ctx, cfg)
}

func checkSchema(ctx context.Context, c *cli.CLI, migrate bool) error {
	db := c.Repository().DB()
	if migrate {
		if _, err := database.Migrate(ctx, db, database.MigrateOptions{}); err != nil {
			return err
		}
	}
	return database.EnsureCurrent(ctx, db)
}
