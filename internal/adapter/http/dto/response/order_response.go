package response

import (
	"time"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

type OrderResponse struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	Items           []CartLineResponse `json:"items"`
	Total           float64            `json:"total"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	DeliveryAddress string             `json:"delivery_address,omitempty"`
	PaymentMethod   string             `json:"payment_method"`
}

// CheckoutResponse pairs the created order with the WhatsApp link the client
// should open to send it.
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]CartLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, FromCartLine(l))
	}
	return OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		Items:           items,
		Total:           o.Total,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   string(o.PaymentMethod),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
