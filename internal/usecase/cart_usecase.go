package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartLineID = errors.New("invalid cart line id")
	ErrInvalidQuantity   = errors.New("invalid quantity")
)

// ICartUseCase exposes the shopping cart operations.
//
// Cart rules:
//   - one line per menu item: adding the same item again raises the quantity
//     on the existing line and overwrites its observations;
//   - a line quantity is always >= 1: updates to zero or below remove the line;
//   - lines embed a copy of the menu item taken at add time.

type ICartUseCase interface {
	List(ctx context.Context) ([]entities.CartLine, float64, error)
	AddItem(ctx context.Context, menuItemID string, quantity int, observations string) (entities.CartLine, error)
	UpdateQuantity(ctx context.Context, lineID string, quantity int) (entities.CartLine, error)
	RemoveItem(ctx context.Context, lineID string) error
	Clear(ctx context.Context) error
}

type CartUseCase struct {
	cartRepo interfaces.ICartRepository
	menuRepo interfaces.IMenuRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(cartRepo interfaces.ICartRepository, menuRepo interfaces.IMenuRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, menuRepo: menuRepo}
}

// List returns the cart lines in insertion order plus the running total.
func (u *CartUseCase) List(ctx context.Context) ([]entities.CartLine, float64, error) {
	lines, err := u.cartRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return lines, total, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, menuItemID string, quantity int, observations string) (entities.CartLine, error) {
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return entities.CartLine{}, ErrInvalidMenuItemID
	}
	if quantity < 1 {
		return entities.CartLine{}, ErrInvalidQuantity
	}

	item, err := u.menuRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return entities.CartLine{}, err
	}
	if item.ID == "" {
		return entities.CartLine{}, ErrMenuItemNotFound
	}

	existing, err := u.cartRepo.GetByMenuItemID(ctx, item.ID)
	if err != nil {
		return entities.CartLine{}, err
	}
	if existing.ID != "" {
		existing.Quantity += quantity
		existing.Observations = observations
		return u.cartRepo.Save(ctx, existing)
	}

	line := entities.CartLine{
		ID:           uuid.NewString(),
		MenuItem:     item, // snapshot copy, not a catalog reference
		Quantity:     quantity,
		Observations: observations,
	}
	return u.cartRepo.Save(ctx, line)
}

// UpdateQuantity sets the quantity of a line. Zero or below removes the line,
// matching RemoveItem. Unknown line ids are a no-op; the returned line has an
// empty ID when nothing remains to report.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, lineID string, quantity int) (entities.CartLine, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.CartLine{}, ErrInvalidCartLineID
	}

	if quantity <= 0 {
		return entities.CartLine{}, u.cartRepo.Delete(ctx, lineID)
	}

	line, err := u.cartRepo.GetByID(ctx, lineID)
	if err != nil {
		return entities.CartLine{}, err
	}
	if line.ID == "" {
		return entities.CartLine{}, nil
	}

	line.Quantity = quantity
	return u.cartRepo.Save(ctx, line)
}

// RemoveItem deletes a line. Removing an absent line is not an error.
func (u *CartUseCase) RemoveItem(ctx context.Context, lineID string) error {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return ErrInvalidCartLineID
	}
	return u.cartRepo.Delete(ctx, lineID)
}

func (u *CartUseCase) Clear(ctx context.Context) error {
	return u.cartRepo.Clear(ctx)
}
