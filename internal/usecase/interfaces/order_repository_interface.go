package interfaces

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// IOrderRepository abstracts the in-memory order book.
//
// List returns orders most-recent-first (Create prepends). Orders are never
// deleted; UpdateStatus is the only mutation after creation and returns a
// zero-value Order when the id is unknown.

type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
