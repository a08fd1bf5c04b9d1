package response

import "github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

type CartLineResponse struct {
	ID           string           `json:"id"`
	MenuItem     MenuItemResponse `json:"menu_item"`
	Quantity     int              `json:"quantity"`
	Observations string           `json:"observations,omitempty"`
	Subtotal     float64          `json:"subtotal"`
}

// CartResponse is the cart snapshot with its running total.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total float64            `json:"total"`
}

func FromCartLine(l entities.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:           l.ID,
		MenuItem:     FromMenuItem(l.MenuItem),
		Quantity:     l.Quantity,
		Observations: l.Observations,
		Subtotal:     l.Subtotal(),
	}
}

func FromCart(lines []entities.CartLine, total float64) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, FromCartLine(l))
	}
	return CartResponse{Items: items, Total: total}
}
