package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vin-online-shopping/internal/domain"
)

func seededCategories() *Collection[domain.Category] {
	return NewCollection("category", []domain.Category{
		{ID: 1, CategoryName: "Games"},
		{ID: 2, CategoryName: "Laptops"},
	}, nil)
}

func TestCollection_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()

	_, err := c.Insert(ctx, domain.Category{CategoryName: "Watches"})
	require.NoError(t, err)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Games", "Laptops", "Watches"}, []string{list[0].CategoryName, list[1].CategoryName, list[2].CategoryName})
	assert.Equal(t, 3, list[2].ID)
}

func TestCollection_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()

	list, err := c.List(ctx)
	require.NoError(t, err)
	list[0].CategoryName = "changed"

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Games", got.CategoryName)
}

func TestCollection_GetByIDNotFound(t *testing.T) {
	_, err := seededCategories().GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCollection_IDsAreNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()

	removed, err := c.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Laptops", removed.CategoryName)

	created, err := c.Insert(ctx, domain.Category{CategoryName: "Routers"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	_, err = c.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_UpdateLeavesRecordOnMutateError(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()
	boom := errors.New("boom")

	_, err := c.Update(ctx, 1, func(cur domain.Category) (domain.Category, error) {
		cur.CategoryName = "half-written"
		return cur, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Games", got.CategoryName)
}

func TestCollection_UpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()

	updated, err := c.Update(ctx, 1, func(cur domain.Category) (domain.Category, error) {
		cur.ID = 42
		cur.CategoryName = "Consoles"
		return cur, nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Category{ID: 1, CategoryName: "Consoles"}, *updated)
}

func TestCollection_UpdateAndDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	c := seededCategories()
	called := false

	_, err := c.Update(ctx, 5, func(cur domain.Category) (domain.Category, error) {
		called = true
		return cur, nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, called)

	_, err = c.Delete(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_ConcurrentInsertsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[domain.Category]("category", nil, nil)

	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := c.Insert(ctx, domain.Category{CategoryName: "x"})
			if err == nil {
				ids <- rec.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, workers, c.Len())
}
