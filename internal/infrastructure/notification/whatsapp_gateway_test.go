package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFixture() entities.Order {
	return entities.Order{
		ID:            "abc-123",
		CustomerName:  "Maria Silva",
		CustomerPhone: "11988887777",
		Items: []entities.CartLine{
			{ID: "l1", MenuItem: entities.MenuItem{ID: "1", Name: "X-Burger Clássico", Price: 18.9}, Quantity: 2, Observations: "sem cebola"},
			{ID: "l2", MenuItem: entities.MenuItem{ID: "3", Name: "Batata Frita", Price: 12.9}, Quantity: 1},
		},
		Total:           50.7,
		Status:          entities.OrderStatusPending,
		CreatedAt:       time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC),
		DeliveryAddress: "Rua das Flores, 10",
		PaymentMethod:   entities.PaymentMethodPix,
	}
}

func TestBuildOrderMessage(t *testing.T) {
	t.Run("delivery order", func(t *testing.T) {
		msg := BuildOrderMessage(orderFixture())

		assert.True(t, strings.HasPrefix(msg, "🍔 *NOVO PEDIDO* 🍔\n\n"))
		assert.Contains(t, msg, "*Cliente:* Maria Silva\n")
		assert.Contains(t, msg, "*Telefone:* 11988887777\n")
		assert.Contains(t, msg, "*Endereço:* Rua das Flores, 10\n")
		assert.Contains(t, msg, "• 2x X-Burger Clássico - R$ 37.80\n")
		assert.Contains(t, msg, "  Obs: sem cebola\n")
		assert.Contains(t, msg, "• 1x Batata Frita - R$ 12.90\n")
		assert.Contains(t, msg, "*Total: R$ 50.70*\n")
		assert.Contains(t, msg, "*Pagamento:* PIX\n")
		assert.True(t, strings.HasSuffix(msg, "*Pedido #abc-123*"))
	})

	t.Run("no address means pickup", func(t *testing.T) {
		order := orderFixture()
		order.DeliveryAddress = ""
		msg := BuildOrderMessage(order)
		assert.Contains(t, msg, "*Endereço:* Retirada no local\n")
	})

	t.Run("no observations line when empty", func(t *testing.T) {
		order := orderFixture()
		order.Items = order.Items[1:]
		msg := BuildOrderMessage(order)
		assert.NotContains(t, msg, "Obs:")
	})

	t.Run("payment labels", func(t *testing.T) {
		cases := map[entities.PaymentMethod]string{
			entities.PaymentMethodCash: "Dinheiro",
			entities.PaymentMethodCard: "Cartão",
			entities.PaymentMethodPix:  "PIX",
		}
		for method, label := range cases {
			order := orderFixture()
			order.PaymentMethod = method
			assert.Contains(t, BuildOrderMessage(order), "*Pagamento:* "+label+"\n")
		}
	})
}

func TestBuildDeepLink(t *testing.T) {
	link := BuildDeepLink("5511999999999", "pedido novo: 2x lanche")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	assert.Contains(t, link, "pedido+novo%3A+2x+lanche")
	assert.NotContains(t, link, " ")
}

func TestWhatsAppGateway_NotifyOrderCreated(t *testing.T) {
	t.Setenv("NOTIFICATION_MOCK", "")
	t.Setenv("WHATSAPP_MOCK", "")

	t.Run("default phone", func(t *testing.T) {
		t.Setenv("WHATSAPP_PHONE", "")
		g := NewWhatsAppGateway()

		link, err := g.NotifyOrderCreated(context.Background(), orderFixture())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	})

	t.Run("phone from env", func(t *testing.T) {
		t.Setenv("WHATSAPP_PHONE", "5511955554444")
		g := NewWhatsAppGateway()

		link, err := g.NotifyOrderCreated(context.Background(), orderFixture())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link, "https://wa.me/5511955554444?text="))
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		g := &WhatsAppGateway{}
		_, err := g.NotifyOrderCreated(context.Background(), orderFixture())
		assert.ErrorIs(t, err, ErrWhatsAppGatewayNotConfigured)
	})
}

func TestWhatsAppGateway_MockMode(t *testing.T) {
	t.Setenv("WHATSAPP_MOCK", "")

	t.Run("returns a deterministic mock link", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "1")
		g := NewWhatsAppGateway()

		link, err := g.NotifyOrderCreated(context.Background(), orderFixture())
		require.NoError(t, err)
		assert.Equal(t, "mock://wa.me/abc-123", link)
	})

	t.Run("accepted flag values", func(t *testing.T) {
		for _, v := range []string{"1", "true", "yes", "on", "mock", " TRUE "} {
			t.Setenv("NOTIFICATION_MOCK", v)
			if !isNotificationMockEnabled() {
				t.Fatalf("expected mock mode for %q", v)
			}
		}
		t.Setenv("NOTIFICATION_MOCK", "0")
		if isNotificationMockEnabled() {
			t.Fatalf("expected real mode for 0")
		}
	})

	t.Run("alias key", func(t *testing.T) {
		t.Setenv("NOTIFICATION_MOCK", "")
		t.Setenv("WHATSAPP_MOCK", "true")
		g := NewWhatsAppGateway()

		link, err := g.NotifyOrderCreated(context.Background(), orderFixture())
		require.NoError(t, err)
		assert.Equal(t, "mock://wa.me/abc-123", link)
	})
}
