package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidCustomer      = errors.New("customer name and phone are required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyCart            = errors.New("cart is empty")
)

// CheckoutInput is the structured customer payload required at checkout.
// Name and phone are mandatory; address and payment method are optional
// (no address means pickup, no payment method means cash).
type CheckoutInput struct {
	Name          string
	Phone         string
	Address       string
	PaymentMethod entities.PaymentMethod
}

// CheckoutResult carries the created order plus the notification deep link
// the storefront client should open.
type CheckoutResult struct {
	Order            entities.Order
	NotificationLink string
}

// IOrderUseCase exposes checkout and the admin order operations.

type IOrderUseCase interface {
	Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	orderRepo interfaces.IOrderRepository
	cartRepo  interfaces.ICartRepository
	notifier  interfaces.IOrderNotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orderRepo interfaces.IOrderRepository, cartRepo interfaces.ICartRepository, notifier interfaces.IOrderNotifier) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, cartRepo: cartRepo, notifier: notifier}
}

// Checkout builds an order from the current cart, stores it and clears the
// cart. The total is fixed here from the cart snapshots; later catalog edits
// cannot change it. Notification is fire-and-forget: a notifier failure is
// logged and the order still stands.
func (u *OrderUseCase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return CheckoutResult{}, ErrInvalidCustomer
	}

	method := in.PaymentMethod
	if method == "" {
		method = entities.PaymentMethodCash
	}
	if !method.Valid() {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}

	lines, err := u.cartRepo.List(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(lines) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}

	order := entities.Order{
		ID:              uuid.NewString(),
		CustomerName:    name,
		CustomerPhone:   phone,
		Items:           lines,
		Total:           total,
		Status:          entities.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
		DeliveryAddress: strings.TrimSpace(in.Address),
		PaymentMethod:   method,
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := u.cartRepo.Clear(ctx); err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("[order][usecase] checkout success order_id=%s items=%d total=%.2f", created.ID, len(created.Items), created.Total)

	link := ""
	if u.notifier != nil {
		link, err = u.notifier.NotifyOrderCreated(ctx, created)
		if err != nil {
			log.Printf("[order][usecase] notification failed order_id=%s err=%v", created.ID, err)
			link = ""
		}
	}

	return CheckoutResult{Order: created, NotificationLink: link}, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.orderRepo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus overwrites the order status. Any of the six statuses is
// accepted in any order; only unknown values are rejected.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
