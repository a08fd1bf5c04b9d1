package entities

import "time"

// OrderStatus represents the lifecycle of a placed order.
//
// Domain notes:
//   - The admin area drives orders forward from pending through confirmed,
//     preparing and ready to delivered, with cancellation offered while still
//     pending.
//   - The data layer does not enforce that sequencing: any of the six values
//     is accepted and status writes are idempotent.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod is how the customer intends to pay on delivery. It is a
// display label only; no payment is processed by this service.

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodPix  PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodPix:
		return true
	}
	return false
}

// Order is a placed order built from the cart at checkout.
//
// Items are snapshot copies of the cart lines; Total is fixed at creation.
// Status is the only field that changes after creation.

type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	Items           []CartLine    `json:"items"`
	Total           float64       `json:"total"`
	Status          OrderStatus   `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	DeliveryAddress string        `json:"delivery_address,omitempty"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
}
