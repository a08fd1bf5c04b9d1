package repository

import (
	"context"
	"testing"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMenuRepository_Seed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "X-Burger Clássico", items[0].Name)
	assert.Equal(t, "Bebidas", items[3].Category)
}

func TestMemoryMenuRepository_SeedIsCopied(t *testing.T) {
	ctx := context.Background()
	seed := DefaultCatalog()
	repo := NewMemoryMenuRepository(seed)

	seed[0].Name = "mutated"

	it, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "X-Burger Clássico", it.Name)
}

func TestMemoryMenuRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	t.Run("found", func(t *testing.T) {
		it, err := repo.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "X-Bacon", it.Name)
	})

	t.Run("missing returns zero value", func(t *testing.T) {
		it, err := repo.GetByID(ctx, "999")
		require.NoError(t, err)
		assert.Empty(t, it.ID)
	})
}

func TestMemoryMenuRepository_CreateAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	created, err := repo.Create(ctx, entities.MenuItem{ID: "5", Name: "Milkshake", Price: 14.9, Available: true})
	require.NoError(t, err)
	assert.Equal(t, "5", created.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Milkshake", items[4].Name)
}

func TestMemoryMenuRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	t.Run("replaces in place", func(t *testing.T) {
		updated, err := repo.Update(ctx, entities.MenuItem{ID: "3", Name: "Batata Rústica", Price: 15.9, Available: false})
		require.NoError(t, err)
		assert.Equal(t, "Batata Rústica", updated.Name)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Batata Rústica", items[2].Name)
		assert.False(t, items[2].Available)
	})

	t.Run("unknown id returns zero value", func(t *testing.T) {
		updated, err := repo.Update(ctx, entities.MenuItem{ID: "999", Name: "Fantasma"})
		require.NoError(t, err)
		assert.Empty(t, updated.ID)
	})
}

func TestMemoryMenuRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	require.NoError(t, repo.Delete(ctx, "2"))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.NotEqual(t, "2", it.ID)
	}

	t.Run("unknown id is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "2"))
		again, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, again, 3)
	})
}

func TestMemoryMenuRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMenuRepository(DefaultCatalog())

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "X-Burger Clássico", fresh[0].Name)
}
