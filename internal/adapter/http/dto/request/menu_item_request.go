package request

import (
	"strings"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// MenuItemRequest is the admin payload for creating or editing a catalog
// entry. Only the name is mandatory; prices and the rest are stored as given.
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

// ToEntity builds the catalog entry; id is empty for creates and the path id
// for updates.
func (r MenuItemRequest) ToEntity(id string) entities.MenuItem {
	return entities.MenuItem{
		ID:          strings.TrimSpace(id),
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Image:       r.Image,
		Available:   r.Available,
	}
}
