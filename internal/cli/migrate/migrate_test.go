package migrate

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hechocli "github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/config"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/testutil"
	"github.com/thenoetrevino/hecho/internal/testutil/cli"
)

// setupUnmigratedCLI binds a CLI to an empty in-memory database
func setupUnmigratedCLI(t *testing.T) (*hechocli.CLI, func() int) {
	t.Helper()
	db := testutil.SetupUnmigratedDB(t)
	c, err := hechocli.NewCLIWithRepository(database.NewRepository(db), config.Default())
	require.NoError(t, err)

	version := func() int {
		v, err := database.CurrentVersion(context.Background(), db)
		require.NoError(t, err)
		return v.ToInt()
	}
	return c, version
}

func latest() int {
	return database.Migrations[len(database.Migrations)-1].Number.ToInt()
}

func TestMigrate_AppliesAll(t *testing.T) {
	c, version := setupUnmigratedCLI(t)

	output, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.EqualValues(t, 0, data["from"])
	assert.EqualValues(t, latest(), data["to"])
	assert.Len(t, data["applied"], len(database.Migrations))
	assert.Equal(t, latest(), version())
}

func TestMigrate_Idempotent(t *testing.T) {
	c, _ := setupUnmigratedCLI(t)

	_, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--quiet"})
	require.NoError(t, err)

	output, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "Schema is up to date")
}

func TestMigrate_DryRun(t *testing.T) {
	db := testutil.SetupUnmigratedDB(t)
	c, err := hechocli.NewCLIWithRepository(database.NewRepository(db), config.Default())
	require.NoError(t, err)

	output, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--dry-run"})
	require.NoError(t, err)
	assert.Contains(t, output, "Would apply 0001")

	var tables int
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'",
	).Scan(&tables))
	assert.Equal(t, 0, tables, "dry run must not touch the schema")
}

func TestMigrate_Target(t *testing.T) {
	c, version := setupUnmigratedCLI(t)

	output, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--target", "1", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(output))
	assert.Equal(t, 1, version())

	// Moving back is a no-op
	output, _, err = cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--target", "1", "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(output))
	assert.Equal(t, 1, version())
}

func TestMigrate_UnknownTarget(t *testing.T) {
	c, version := setupUnmigratedCLI(t)

	_, _, err := cli.ExecuteCLICommand(t, c, MigrateCmd(), []string{"--target", "999"})
	require.Error(t, err)
	assert.Equal(t, hechocli.ExitUsage, hechocli.ExitCode(err))
	assert.Equal(t, 0, version())
}

func TestMigrate_ConfiguredDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "data", "todos.db")

	cmd := MigrateCmd()
	cmd.SetContext(hechocli.WithConfig(context.Background(), cfg))
	_, _, err := testutil.ExecuteCommand(t, cmd, []string{"--quiet"})
	require.NoError(t, err)

	// The schema is now current, so the CLI can open it
	c, err := hechocli.NewCLI(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
