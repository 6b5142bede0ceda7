package store_test

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/bjaus/tasks/internal/store"
	"github.com/bjaus/tasks/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func openStore(t *testing.T, path string) *store.Store {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	s, err := store.Open(context.Background(), path, store.WithClock(clock.now))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return openStore(t, filepath.Join(t.TempDir(), "nested", "tasks.db"))
}

func scopePtr(s string) *task.Scope {
	sc := task.NewScope(s)
	return &sc
}

func listAll(t *testing.T, s *store.Store, scope *task.Scope) []task.Task {
	t.Helper()
	cur, err := s.List(context.Background(), scope)
	require.NoError(t, err)
	defer cur.Close()
	got := slices.Collect(cur.Tasks())
	require.NoError(t, cur.Err())
	return got
}

func TestOpenCreatesDirectoryAndMigrates(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	v, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.FileExists(t, s.Path())

	// Migrating again is a no-op.
	require.NoError(t, s.Migrate(ctx))
	v, err = s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	first, err := s.Add(ctx, task.NewTask{Description: "buy milk"})
	require.NoError(t, err)
	second, err := s.Add(ctx, task.NewTask{Description: "file taxes", Scope: scopePtr("Home")})
	require.NoError(t, err)

	assert.Equal(t, task.ID(1), first.ID)
	assert.Equal(t, task.ID(2), second.ID)
	last, err := s.LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.ID(2), last)
}

func TestReopenContinuesIDs(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.db")
	ctx := context.Background()

	s := openStore(t, path)
	_, err := s.Add(ctx, task.NewTask{Description: "one"})
	require.NoError(t, err)
	_, err = s.Add(ctx, task.NewTask{Description: "two"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s = openStore(t, path)
	third, err := s.Add(ctx, task.NewTask{Description: "three"})
	require.NoError(t, err)
	assert.Equal(t, task.ID(3), third.ID)
}

func TestGet(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	added, err := s.Add(ctx, task.NewTask{Description: "walk dog", Scope: scopePtr("home")})
	require.NoError(t, err)

	got, err := s.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "walk dog", got.Description)
	assert.Equal(t, "home", got.ScopeOr(""))
	assert.True(t, added.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.Completed())

	_, err = s.Get(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleComplete(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	added, err := s.Add(ctx, task.NewTask{Description: "ship release"})
	require.NoError(t, err)

	done, err := s.ToggleComplete(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed())
	stored, err := s.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, stored.Completed())
	assert.True(t, done.CompletedAt.Equal(*stored.CompletedAt))

	reopened, err := s.ToggleComplete(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed())
	stored, err = s.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed())

	_, err = s.ToggleComplete(ctx, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	added, err := s.Add(ctx, task.NewTask{Description: "temp"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, added.ID))
	_, err = s.Get(ctx, added.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, added.ID), store.ErrNotFound)
}

func TestListOrderAndScopeFilter(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	for _, in := range []task.NewTask{
		{Description: "a", Scope: scopePtr("work")},
		{Description: "b"},
		{Description: "c", Scope: scopePtr("WORK")},
		{Description: "d", Scope: scopePtr("home")},
	} {
		_, err := s.Add(ctx, in)
		require.NoError(t, err)
	}

	descriptions := func(ts []task.Task) []string {
		out := make([]string, len(ts))
		for i, tk := range ts {
			out[i] = tk.Description
		}
		return out
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, descriptions(listAll(t, s, nil)))
	assert.Equal(t, []string{"c", "a"}, descriptions(listAll(t, s, scopePtr("work"))))
	assert.Empty(t, listAll(t, s, scopePtr("garden")))
}

func TestListStopsEarly(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	for range 5 {
		_, err := s.Add(ctx, task.NewTask{Description: "x"})
		require.NoError(t, err)
	}
	cur, err := s.List(ctx, nil)
	require.NoError(t, err)
	n := 0
	for range cur.Tasks() {
		n++
		if n == 2 {
			break
		}
	}
	require.NoError(t, cur.Close())
	assert.Equal(t, 2, n)
	assert.NoError(t, cur.Err())
}

func TestScopes(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()
	got, err := s.Scopes(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, in := range []task.NewTask{
		{Description: "a", Scope: scopePtr("work")},
		{Description: "b"},
		{Description: "c", Scope: scopePtr("home")},
		{Description: "d", Scope: scopePtr("Work")},
	} {
		_, err := s.Add(ctx, in)
		require.NoError(t, err)
	}
	got, err = s.Scopes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []task.Scope{"home", "work"}, got)
}
