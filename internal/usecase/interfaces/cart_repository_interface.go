package interfaces

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// ICartRepository abstracts the in-memory shopping cart.
//
// The cart keeps insertion order. Save inserts a new line or replaces the
// existing one with the same line id. Delete and Clear never fail on absent
// lines.

type ICartRepository interface {
	List(ctx context.Context) ([]entities.CartLine, error)
	GetByID(ctx context.Context, lineID string) (entities.CartLine, error)
	GetByMenuItemID(ctx context.Context, menuItemID string) (entities.CartLine, error)
	Save(ctx context.Context, line entities.CartLine) (entities.CartLine, error)
	Delete(ctx context.Context, lineID string) error
	Clear(ctx context.Context) error
}
