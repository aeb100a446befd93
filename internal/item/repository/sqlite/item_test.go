package sqlite

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
	"inventory-service/pkg/log"
	pkgSqlite "inventory-service/pkg/sqlite"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := pkgSqlite.Open(pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "store.db"), BusyTimeout: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := New(db, log.NewNop())
	require.NoError(t, r.EnsureSchema(context.Background()))
	return r
}

func widget(id int64) repo.CreateItemOptions {
	return repo.CreateItemOptions{ID: id, Name: "Widget", Price: 9.99, Quantity: 5, ReleaseYear: 2020}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.EnsureSchema(context.Background()))
	require.NoError(t, r.EnsureSchema(context.Background()))
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateItem(ctx, widget(1))
	require.NoError(t, err)

	items, total, err := r.ListItems(ctx, repo.ListItemsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])
}

func TestCreateItem_Duplicate(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	_, err := r.CreateItem(ctx, widget(1))
	require.NoError(t, err)

	dup := widget(1)
	dup.Name = "Other"
	_, err = r.CreateItem(ctx, dup)
	assert.ErrorIs(t, err, item.ErrItemExists)

	got, found, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: 1})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Widget", got.Name, "existing row must be untouched")
}

func TestGetOneItem_Missing(t *testing.T) {
	r := newTestRepo(t)
	_, found, err := r.GetOneItem(context.Background(), repo.GetOneItemOptions{ID: 42})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	_, err := r.CreateItem(ctx, widget(1))
	require.NoError(t, err)

	t.Run("Replaces all fields", func(t *testing.T) {
		upd := repo.UpdateItemOptions{ID: 1, Name: "Gadget", Price: 1.5, Quantity: 0, ReleaseYear: 1999}
		_, err := r.UpdateItem(ctx, upd)
		require.NoError(t, err)

		got, found, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: 1})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, item.Item{ID: 1, Name: "Gadget", Price: 1.5, Quantity: 0, ReleaseYear: 1999}, got)
	})

	t.Run("Missing id creates nothing", func(t *testing.T) {
		_, err := r.UpdateItem(ctx, repo.UpdateItemOptions{ID: 7, Name: "X", ReleaseYear: 2000})
		assert.ErrorIs(t, err, item.ErrItemNotFound)

		_, total, err := r.ListItems(ctx, repo.ListItemsOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	for id := int64(1); id <= 3; id++ {
		_, err := r.CreateItem(ctx, widget(id))
		require.NoError(t, err)
	}

	require.NoError(t, r.DeleteItem(ctx, 2))
	assert.ErrorIs(t, r.DeleteItem(ctx, 2), item.ErrItemNotFound)

	items, total, err := r.ListItems(ctx, repo.ListItemsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	ids := []int64{items[0].ID, items[1].ID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestListItems_Pagination(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	const n = 7
	for id := int64(1); id <= n; id++ {
		_, err := r.CreateItem(ctx, widget(id))
		require.NoError(t, err)
	}

	const size = 3
	seen := map[int64]int{}
	for page := 1; page <= (n+size-1)/size; page++ {
		items, total, err := r.ListItems(ctx, repo.ListItemsOptions{Limit: size, Offset: (page - 1) * size})
		require.NoError(t, err)
		assert.Equal(t, n, total)
		assert.LessOrEqual(t, len(items), size)
		for _, it := range items {
			seen[it.ID]++
		}
	}
	assert.Len(t, seen, n)
	for id, c := range seen {
		assert.Equalf(t, 1, c, "id %d seen %d times", id, c)
	}
}

func TestListItems_Filter(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	names := []string{"Blue Widget", "Red widget", "Gadget", "100%_off"}
	for i, name := range names {
		opt := widget(int64(i + 1))
		opt.Name = name
		_, err := r.CreateItem(ctx, opt)
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  int
	}{
		{"widget", 2},
		{"Gadget", 1},
		{"%", 1},
		{"_", 1},
		{"nothing", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			items, total, err := r.ListItems(ctx, repo.ListItemsOptions{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
			assert.Len(t, items, tt.want)
		})
	}

	t.Run("Filter with page", func(t *testing.T) {
		items, total, err := r.ListItems(ctx, repo.ListItemsOptions{Query: "widget", Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, items, 1)
	})
}

func TestListItems_EmptyIsNotNil(t *testing.T) {
	r := newTestRepo(t)
	items, total, err := r.ListItems(context.Background(), repo.ListItemsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, items)
}
