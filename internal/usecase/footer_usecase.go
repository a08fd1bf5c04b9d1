package usecase

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

// IFooterUseCase exposes the footer configuration singleton. Update replaces
// the whole record; fields are stored as given.

type IFooterUseCase interface {
	Get(ctx context.Context) (entities.FooterConfig, error)
	Update(ctx context.Context, config entities.FooterConfig) (entities.FooterConfig, error)
}

type FooterUseCase struct {
	repo interfaces.IFooterRepository
}

var _ IFooterUseCase = (*FooterUseCase)(nil)

func NewFooterUseCase(repo interfaces.IFooterRepository) *FooterUseCase {
	return &FooterUseCase{repo: repo}
}

func (u *FooterUseCase) Get(ctx context.Context) (entities.FooterConfig, error) {
	return u.repo.Get(ctx)
}

func (u *FooterUseCase) Update(ctx context.Context, config entities.FooterConfig) (entities.FooterConfig, error) {
	return u.repo.Replace(ctx, config)
}
