// Package cli wires an in-memory database into the CLI context for command tests.
// It lives apart from testutil so service and database tests can import
// testutil without pulling in the CLI.
package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"
	hechocli "github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/config"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/testutil"
)

// SetupCLITest creates a migrated in-memory DB and a CLI bound to it
func SetupCLITest(t *testing.T) (*sql.DB, *hechocli.CLI) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := config.Default()
	cfg.Database.Path = database.MemoryPath

	c, err := hechocli.NewCLIWithRepository(database.NewRepository(db), cfg)
	if err != nil {
		t.Fatalf("Failed to create CLI: %v", err)
	}

	return db, c
}

// ExecuteCLICommand runs cmd with the test CLI injected into its context
func ExecuteCLICommand(t *testing.T, c *hechocli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	cmd.SetContext(hechocli.WithCLI(context.Background(), c))
	return testutil.ExecuteCommand(t, cmd, args)
}
