package request

import (
	"strings"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
)

// CheckoutRequest is the structured customer payload accepted at checkout,
// replacing the free-form bag the storefront form used to post. Address is
// optional (empty means pickup) and payment_method defaults to cash.
type CheckoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=cash card pix"`
}

func (r CheckoutRequest) ResolvePaymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod))
}
