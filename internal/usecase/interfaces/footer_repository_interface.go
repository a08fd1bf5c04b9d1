package interfaces

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// IFooterRepository abstracts the footer configuration singleton.

type IFooterRepository interface {
	Get(ctx context.Context) (entities.FooterConfig, error)
	Replace(ctx context.Context, config entities.FooterConfig) (entities.FooterConfig, error)
}
