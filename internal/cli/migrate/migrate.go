// Package migrate implements 'hecho migrate'
package migrate

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/cli/handler"
	"github.com/thenoetrevino/hecho/internal/cli/styles"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/types"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply pending schema migrations, in order, up to the latest one or --target.
Each migration runs in its own transaction. Migrations only move forward:
a target at or below the current version changes nothing.

Examples:
  # Bring the schema up to date
  hecho migrate

  # Show what would run without touching the database
  hecho migrate --dry-run
`,
		RunE: handler.SimpleCommand(handler.NoArgs(handler.HandlerFunc(runMigrate))),
	}

	cmd.Flags().Int("target", 0, "Stop after this migration number (0 = latest)")
	cmd.Flags().Bool("dry-run", false, "Report pending migrations without applying them")

	handler.AddOutputFlags(cmd)

	return cmd
}

type appliedMigration struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type migrateResult struct {
	From    int                `json:"from"`
	To      int                `json:"to"`
	DryRun  bool               `json:"dry_run"`
	Applied []appliedMigration `json:"applied"`
}

func (r *migrateResult) GetIDs() []int {
	ids := make([]int, len(r.Applied))
	for i, m := range r.Applied {
		ids[i] = m.Number
	}
	return ids
}

func (r *migrateResult) PrintHuman(w io.Writer) error {
	if len(r.Applied) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("Schema is up to date (version %d)", r.From)))
		return err
	}

	verb := "Applied"
	if r.DryRun {
		verb = "Would apply"
	}
	for _, m := range r.Applied {
		line := fmt.Sprintf("%s %s", styles.LabelStyle.Render(fmt.Sprintf("%s %04d", verb, m.Number)), styles.ValueStyle.Render(m.Name))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("Schema version %d -> %d", r.From, r.To)))
	return err
}

func runMigrate(ctx context.Context, args *handler.Arguments) (any, error) {
	target := args.GetInt("target", 0)
	if target < 0 {
		return nil, fmt.Errorf("%w: --target must not be negative", cli.ErrUsage)
	}

	db, release, err := cli.OpenDB(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = release() }()

	from, err := database.CurrentVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	migrations, err := database.Migrate(ctx, db, database.MigrateOptions{
		Target: types.MigrationNumber(target),
		DryRun: args.GetBool("dry-run"),
	})
	if err != nil {
		return nil, err
	}

	result := &migrateResult{
		From:    from.ToInt(),
		To:      from.ToInt(),
		DryRun:  args.GetBool("dry-run"),
		Applied: make([]appliedMigration, 0, len(migrations)),
	}
	for _, m := range migrations {
		result.Applied = append(result.Applied, appliedMigration{Number: m.Number.ToInt(), Name: m.Name})
		result.To = m.Number.ToInt()
	}
	return result, nil
}
