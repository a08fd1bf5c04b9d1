package interfaces

import (
	"context"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// IOrderNotifier abstracts the checkout notification collaborator
// (e.g. the WhatsApp deep-link gateway).
//
// NotifyOrderCreated returns the link the storefront client should open.
// Checkout treats the call as fire-and-forget: a notifier error is logged,
// never surfaced to the customer.
type IOrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order entities.Order) (link string, err error)
}
