package repository

import (
	"context"
	"sync"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

// MemoryCartRepository holds the shopping cart in process memory.
//
// Lines keep insertion order. Each line embeds its own copy of the menu item,
// so the cart is isolated from later catalog edits.

type MemoryCartRepository struct {
	mu    sync.RWMutex
	lines []entities.CartLine
}

var _ interfaces.ICartRepository = (*MemoryCartRepository)(nil)

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

func (r *MemoryCartRepository) List(_ context.Context) ([]entities.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.CartLine, len(r.lines))
	copy(out, r.lines)
	return out, nil
}

func (r *MemoryCartRepository) GetByID(_ context.Context, lineID string) (entities.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lines {
		if l.ID == lineID {
			return l, nil
		}
	}
	return entities.CartLine{}, nil
}

func (r *MemoryCartRepository) GetByMenuItemID(_ context.Context, menuItemID string) (entities.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.lines {
		if l.MenuItem.ID == menuItemID {
			return l, nil
		}
	}
	return entities.CartLine{}, nil
}

// Save replaces the line with the same id in place, or appends a new line.
func (r *MemoryCartRepository) Save(_ context.Context, line entities.CartLine) (entities.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lines {
		if l.ID == line.ID {
			r.lines[i] = line
			return line, nil
		}
	}
	r.lines = append(r.lines, line)
	return line, nil
}

func (r *MemoryCartRepository) Delete(_ context.Context, lineID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lines {
		if l.ID == lineID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryCartRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = nil
	return nil
}
