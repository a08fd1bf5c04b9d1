package repository

import (
	"context"
	"sync"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

// MemoryFooterRepository holds the footer configuration singleton. Replace
// swaps the whole record; there is no partial update.

type MemoryFooterRepository struct {
	mu     sync.RWMutex
	config entities.FooterConfig
}

var _ interfaces.IFooterRepository = (*MemoryFooterRepository)(nil)

func NewMemoryFooterRepository(initial entities.FooterConfig) *MemoryFooterRepository {
	return &MemoryFooterRepository{config: initial}
}

func (r *MemoryFooterRepository) Get(_ context.Context) (entities.FooterConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.config, nil
}

func (r *MemoryFooterRepository) Replace(_ context.Context, config entities.FooterConfig) (entities.FooterConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = config
	return config, nil
}
