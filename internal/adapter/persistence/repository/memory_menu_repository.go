package repository

import (
	"context"
	"sync"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

// MemoryMenuRepository holds the menu catalog in process memory.
//
// The catalog keeps insertion order so the storefront lists items the way the
// admin created them. State lives for the lifetime of the process; there is no
// persistence by design.

type MemoryMenuRepository struct {
	mu    sync.RWMutex
	items []entities.MenuItem
}

var _ interfaces.IMenuRepository = (*MemoryMenuRepository)(nil)

func NewMemoryMenuRepository(seed []entities.MenuItem) *MemoryMenuRepository {
	items := make([]entities.MenuItem, len(seed))
	copy(items, seed)
	return &MemoryMenuRepository{items: items}
}

func (r *MemoryMenuRepository) List(_ context.Context) ([]entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryMenuRepository) GetByID(_ context.Context, id string) (entities.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return entities.MenuItem{}, nil
}

func (r *MemoryMenuRepository) Create(_ context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return item, nil
}

// Update replaces the entry with the same id. Unknown ids return a zero-value
// item so the use case can report not-found.
func (r *MemoryMenuRepository) Update(_ context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return entities.MenuItem{}, nil
}

// Delete removes the entry with the given id. Deleting an unknown id is a
// no-op. Cart lines and past orders keep their own copies and are untouched.
func (r *MemoryMenuRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
