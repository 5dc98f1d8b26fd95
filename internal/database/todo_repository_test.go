package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hecho/internal/models"
)

func TestTodoRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	tests := []struct {
		name      string
		title     string
		completed bool
	}{
		{"short open", "buy milk", false},
		{"short done", "file taxes", true},
		{"empty title", "", false},
		{"max length", strings.Repeat("x", models.TitleMaxLength), true},
		{"max length multibyte", strings.Repeat("ñ", models.TitleMaxLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := repo.CreateTodo(ctx, tt.title, boolPtr(tt.completed))
			require.NoError(t, err)
			require.Positive(t, created.ID)

			got, err := repo.GetTodoByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.completed, got.Completed)
			assert.False(t, got.CreatedAt.IsZero(), "created_at should be set")
		})
	}
}

func TestCreateTodo_DefaultsToOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.CreateTodo(ctx, "walk the dog", nil)
	require.NoError(t, err)
	assert.False(t, created.Completed)

	got, err := repo.GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestCreateTodo_TitleTooLongRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.CreateTodo(ctx, strings.Repeat("x", models.TitleMaxLength+1), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrTitleTooLong)

	// Characters, not bytes
	_, err = repo.CreateTodo(ctx, strings.Repeat("ñ", models.TitleMaxLength+1), nil)
	assert.ErrorIs(t, err, models.ErrTitleTooLong)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todo_items").Scan(&count))
	assert.Equal(t, 0, count, "rejected rows must not be stored")
}

func TestCreateTodo_NULTitleRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	tests := []struct {
		name  string
		title string
	}{
		{"long after nul", "a\x00" + strings.Repeat("b", 300)},
		{"leading nul", "\x00title"},
		{"trailing nul", "title\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateTodo(ctx, tt.title, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrTitleInvalid)
		})
	}

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todo_items").Scan(&count))
	assert.Equal(t, 0, count, "rejected rows must not be stored")
}

func TestUpdateTodo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.CreateTodo(ctx, "draft", nil)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTodo(ctx, created.ID, "final", true))

	got, err := repo.GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.True(t, got.Completed)

	err = repo.UpdateTodo(ctx, created.ID, strings.Repeat("y", models.TitleMaxLength+1), true)
	assert.ErrorIs(t, err, models.ErrTitleTooLong)

	err = repo.UpdateTodo(ctx, 9999, "ghost", false)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	created, err := repo.CreateTodo(ctx, "temporary", nil)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTodo(ctx, created.ID))

	_, err = repo.GetTodoByID(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)

	assert.ErrorIs(t, repo.DeleteTodo(ctx, created.ID), models.ErrTodoNotFound)
}

func TestListTodos_Filter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	empty, err := repo.ListTodos(ctx, models.TodoFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, seed := range []struct {
		title string
		done  bool
	}{
		{"one", false},
		{"two", true},
		{"three", false},
	} {
		_, err := repo.CreateTodo(ctx, seed.title, boolPtr(seed.done))
		require.NoError(t, err)
	}

	all, err := repo.ListTodos(ctx, models.TodoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "one", all[0].Title)
	assert.Equal(t, "three", all[2].Title)

	open, err := repo.ListTodos(ctx, models.TodoFilter{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.Len(t, open, 2)

	done, err := repo.ListTodos(ctx, models.TodoFilter{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "two", done[0].Title)

	stats, err := repo.GetTodoStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.TodoStats{Total: 3, Open: 2, Done: 1}, *stats)
}

func TestTodoPersistence_AcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := setupTestDBFile(t)

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = Migrate(ctx, db, MigrateOptions{})
	require.NoError(t, err)

	created, err := NewRepository(db).CreateTodo(ctx, "survive restart", boolPtr(true))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, EnsureCurrent(ctx, db))

	got, err := NewRepository(db).GetTodoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "survive restart", got.Title)
	assert.True(t, got.Completed)
}
