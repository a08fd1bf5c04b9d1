package repository

import (
	"context"
	"testing"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burgerLine() entities.CartLine {
	return entities.CartLine{
		ID:       "l1",
		MenuItem: entities.MenuItem{ID: "1", Name: "X-Burger Clássico", Price: 18.9},
		Quantity: 2,
	}
}

func TestMemoryCartRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	_, err := repo.Save(ctx, burgerLine())
	require.NoError(t, err)
	_, err = repo.Save(ctx, entities.CartLine{ID: "l2", MenuItem: entities.MenuItem{ID: "3", Price: 12.9}, Quantity: 1})
	require.NoError(t, err)

	lines, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "l1", lines[0].ID)
	assert.Equal(t, "l2", lines[1].ID)
}

func TestMemoryCartRepository_SaveReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	_, err := repo.Save(ctx, burgerLine())
	require.NoError(t, err)
	_, err = repo.Save(ctx, entities.CartLine{ID: "l2", MenuItem: entities.MenuItem{ID: "3"}, Quantity: 1})
	require.NoError(t, err)

	updated := burgerLine()
	updated.Quantity = 5
	_, err = repo.Save(ctx, updated)
	require.NoError(t, err)

	lines, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "l1", lines[0].ID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestMemoryCartRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	_, err := repo.Save(ctx, burgerLine())
	require.NoError(t, err)

	t.Run("by line id", func(t *testing.T) {
		l, err := repo.GetByID(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, 2, l.Quantity)
	})

	t.Run("by menu item id", func(t *testing.T) {
		l, err := repo.GetByMenuItemID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "l1", l.ID)
	})

	t.Run("missing returns zero value", func(t *testing.T) {
		l, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, l.ID)

		l, err = repo.GetByMenuItemID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, l.ID)
	})
}

func TestMemoryCartRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	_, err := repo.Save(ctx, burgerLine())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "l1"))
	require.NoError(t, repo.Delete(ctx, "l1"))

	lines, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryCartRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	_, err := repo.Save(ctx, burgerLine())
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx))

	lines, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestMemoryCartRepository_LineIsIsolatedFromCatalog(t *testing.T) {
	ctx := context.Background()
	menuRepo := NewMemoryMenuRepository(DefaultCatalog())
	cartRepo := NewMemoryCartRepository()

	item, err := menuRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	_, err = cartRepo.Save(ctx, entities.CartLine{ID: "l1", MenuItem: item, Quantity: 1})
	require.NoError(t, err)

	item.Price = 99.9
	_, err = menuRepo.Update(ctx, item)
	require.NoError(t, err)
	require.NoError(t, menuRepo.Delete(ctx, "1"))

	l, err := cartRepo.GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 18.9, l.MenuItem.Price)
	assert.Equal(t, "X-Burger Clássico", l.MenuItem.Name)
}
