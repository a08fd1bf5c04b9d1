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
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInvalidMenuItemID = errors.New("invalid menu item id")
)

// IMenuUseCase exposes the admin menu catalog operations plus the storefront
// listing. Item fields are stored as given; the service does not second-guess
// prices or descriptions.

type IMenuUseCase interface {
	List(ctx context.Context, onlyAvailable bool) ([]entities.MenuItem, error)
	GetByID(ctx context.Context, id string) (entities.MenuItem, error)
	Add(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	Update(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type MenuUseCase struct {
	repo interfaces.IMenuRepository
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(repo interfaces.IMenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

func (u *MenuUseCase) List(ctx context.Context, onlyAvailable bool) ([]entities.MenuItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !onlyAvailable {
		return items, nil
	}

	available := make([]entities.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Available {
			available = append(available, it)
		}
	}
	return available, nil
}

func (u *MenuUseCase) GetByID(ctx context.Context, id string) (entities.MenuItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MenuItem{}, ErrInvalidMenuItemID
	}

	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MenuItem{}, err
	}
	if it.ID == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	return it, nil
}

// Add stores a new catalog entry. The id is always assigned here; whatever the
// caller sent in item.ID is discarded.
func (u *MenuUseCase) Add(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	item.ID = uuid.NewString()
	return u.repo.Create(ctx, item)
}

func (u *MenuUseCase) Update(ctx context.Context, item entities.MenuItem) (entities.MenuItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return entities.MenuItem{}, ErrInvalidMenuItemID
	}

	updated, err := u.repo.Update(ctx, item)
	if err != nil {
		return entities.MenuItem{}, err
	}
	if updated.ID == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	return updated, nil
}

// Delete removes a catalog entry. Unknown ids are a no-op, and existing cart
// lines or orders referencing the item keep their snapshots.
func (u *MenuUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMenuItemID
	}
	return u.repo.Delete(ctx, id)
}
