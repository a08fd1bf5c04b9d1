package repository

import (
	"context"
	"sync"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

// MemoryOrderRepository holds placed orders in process memory.
//
// Create prepends, so List is always most-recent-first. Orders are never
// deleted.

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

var _ interfaces.IOrderRepository = (*MemoryOrderRepository)(nil)

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]entities.Order{order}, r.orders...)
	return order, nil
}

func (r *MemoryOrderRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

// UpdateStatus overwrites the status of the matching order. No transition
// table is enforced; writing the current status again is a no-op.
func (r *MemoryOrderRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			return r.orders[i], nil
		}
	}
	return entities.Order{}, nil
}
