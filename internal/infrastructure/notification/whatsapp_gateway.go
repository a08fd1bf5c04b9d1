package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"
)

var ErrWhatsAppGatewayNotConfigured = errors.New("whatsapp gateway not configured")

const defaultBusinessPhone = "5511999999999"

// WhatsAppGateway formats the new-order message and builds the wa.me deep
// link the storefront client opens. There is no delivery confirmation: once
// the link is built the gateway's job is done.

type WhatsAppGateway struct {
	phone    string
	mockMode bool
}

var _ interfaces.IOrderNotifier = (*WhatsAppGateway)(nil)

// NewWhatsAppGateway reads the destination from WHATSAPP_PHONE (digits only,
// country code included), falling back to the business default.
func NewWhatsAppGateway() *WhatsAppGateway {
	if isNotificationMockEnabled() {
		log.Printf("[notification][gateway] mock mode enabled")
		return &WhatsAppGateway{mockMode: true}
	}

	phone := strings.TrimSpace(os.Getenv("WHATSAPP_PHONE"))
	if phone == "" {
		phone = defaultBusinessPhone
	}
	log.Printf("[notification][gateway] whatsapp gateway initialized phone=%s", phone)
	return &WhatsAppGateway{phone: phone}
}

func (g *WhatsAppGateway) NotifyOrderCreated(_ context.Context, order entities.Order) (string, error) {
	if g != nil && g.mockMode {
		link := fmt.Sprintf("mock://wa.me/%s", order.ID)
		log.Printf("[notification][gateway] mock notify success order_id=%s", order.ID)
		return link, nil
	}

	if g == nil || g.phone == "" {
		return "", ErrWhatsAppGatewayNotConfigured
	}

	link := BuildDeepLink(g.phone, BuildOrderMessage(order))
	log.Printf("[notification][gateway] order message built order_id=%s link_len=%d", order.ID, len(link))
	return link, nil
}

func isNotificationMockEnabled() bool {
	for _, key := range []string{"NOTIFICATION_MOCK", "WHATSAPP_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// BuildOrderMessage renders the pt-BR order summary sent to the shop.
func BuildOrderMessage(order entities.Order) string {
	address := order.DeliveryAddress
	if address == "" {
		address = "Retirada no local"
	}

	var b strings.Builder
	b.WriteString("🍔 *NOVO PEDIDO* 🍔\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "*Endereço:* %s\n\n", address)
	b.WriteString("*Itens:*\n")
	for _, l := range order.Items {
		fmt.Fprintf(&b, "• %dx %s - R$ %.2f\n", l.Quantity, l.MenuItem.Name, l.Subtotal())
		if l.Observations != "" {
			fmt.Fprintf(&b, "  Obs: %s\n", l.Observations)
		}
	}
	fmt.Fprintf(&b, "\n*Total: R$ %.2f*\n", order.Total)
	fmt.Fprintf(&b, "*Pagamento:* %s\n\n", paymentLabel(order.PaymentMethod))
	fmt.Fprintf(&b, "*Pedido #%s*", order.ID)
	return b.String()
}

// BuildDeepLink url-encodes the message into a wa.me link.
func BuildDeepLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

func paymentLabel(m entities.PaymentMethod) string {
	switch m {
	case entities.PaymentMethodCash:
		return "Dinheiro"
	case entities.PaymentMethodCard:
		return "Cartão"
	case entities.PaymentMethodPix:
		return "PIX"
	default:
		return string(m)
	}
}
