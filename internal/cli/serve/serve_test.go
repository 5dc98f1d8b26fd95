package serve

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hechocli "github.com/thenoetrevino/hecho/internal/cli"
	"github.com/thenoetrevino/hecho/internal/config"
	"github.com/thenoetrevino/hecho/internal/database"
	"github.com/thenoetrevino/hecho/internal/testutil"
	"github.com/thenoetrevino/hecho/internal/testutil/cli"
)

func newUnmigratedCLI(t *testing.T) *hechocli.CLI {
	t.Helper()
	db := testutil.SetupUnmigratedDB(t)
	c, err := hechocli.NewCLIWithRepository(database.NewRepository(db), config.Default())
	require.NoError(t, err)
	return c
}

// runUntil executes serve with c injected and stops it after d
func runUntil(t *testing.T, c *hechocli.CLI, d time.Duration, args ...string) error {
	t.Helper()
	ctx, cancel := context.WithCancel(hechocli.WithCLI(context.Background(), c))
	defer cancel()

	go func() {
		time.Sleep(d)
		cancel()
	}()

	cmd := ServeCmd()
	cmd.SetContext(ctx)
	_, _, err := testutil.ExecuteCommand(t, cmd, append([]string{"--addr", "127.0.0.1:0"}, args...))
	return err
}

func TestServe_RefusesPendingMigrations(t *testing.T) {
	c := newUnmigratedCLI(t)

	err := runUntil(t, c, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrPendingMigrations)
	assert.Equal(t, hechocli.ExitUsage, hechocli.ExitCode(err))
}

func TestServe_MigrateFlag(t *testing.T) {
	c := newUnmigratedCLI(t)

	err := runUntil(t, c, 200*time.Millisecond, "--migrate")
	require.NoError(t, err)

	pending, err := database.Pending(context.Background(), c.Repository().DB())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestServe_StopsOnCancel(t *testing.T) {
	_, c := cli.SetupCLITest(t)

	done := make(chan error, 1)
	go func() { done <- runUntil(t, c, 200*time.Millisecond) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}
