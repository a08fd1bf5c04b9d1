package interfaces

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// IMenuRepository abstracts the in-memory menu catalog.
//
// Not-found convention: lookups return a zero-value MenuItem and a nil error;
// callers check ID == "".

type IMenuRepository interface {
	List(ctx context.Context) ([]entities.MenuItem, error)
	GetByID(ctx context.Context, id string) (entities.MenuItem, error)
	Create(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	Update(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
