package response

import "github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

func FromMenuItem(it entities.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    it.Category,
		Image:       it.Image,
		Available:   it.Available,
	}
}

func FromMenuItems(items []entities.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromMenuItem(it))
	}
	return out
}
