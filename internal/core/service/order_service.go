package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// ConfirmFunc is the interactive confirmation step (the modal) shown before a
// transition into a terminal status. Returning false aborts the transition.
type ConfirmFunc func(target domain.OrderStatus) bool

// OrderService drives order placement and the client side of the
// server-authoritative status machine: the client only ever proposes the next
// status in the progression and reconciles by refetching after each update.
type OrderService struct {
	api     ports.OrdersAPI
	cart    *CartStore
	session *SessionStore
	log     zerolog.Logger
	now     func() time.Time
}

func NewOrderService(api ports.OrdersAPI, cart *CartStore, session *SessionStore, log zerolog.Logger) *OrderService {
	return &OrderService{api: api, cart: cart, session: session, log: log, now: time.Now}
}

// ProposeAdvance returns the status the "advance" action would request.
// Terminal orders have no proposal; the action is disabled.
func (s *OrderService) ProposeAdvance(order domain.Order) (domain.OrderStatus, error) {
	return order.Status.Next()
}

// Advance requests the next status in the progression. Transitions into
// Received require confirmation first; a declined confirmation is a no-op and
// the displayed status stays as it was. On success the order is refetched to
// reconcile; no optimistic status mutation survives without the server.
func (s *OrderService) Advance(ctx context.Context, order domain.Order, confirm ConfirmFunc) (*domain.Order, error) {
	next, err := order.Status.Next()
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, next, confirm)
}

// Cancel requests the Cancelled side-branch. Always gated by confirmation;
// terminal orders cannot be cancelled.
func (s *OrderService) Cancel(ctx context.Context, order domain.Order, confirm ConfirmFunc) (*domain.Order, error) {
	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is terminal", domain.ErrInvalidTransition, order.Status)
	}
	return s.transition(ctx, order, domain.StatusCancelled, confirm)
}

func (s *OrderService) transition(ctx context.Context, order domain.Order, target domain.OrderStatus, confirm ConfirmFunc) (*domain.Order, error) {
	if !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, order.Status, target)
	}
	if target.RequiresConfirmation() {
		if confirm == nil || !confirm(target) {
			return nil, domain.ErrConfirmDeclined
		}
	}

	if err := s.api.UpdateOrderStatus(ctx, order.ID, target); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("order_id", order.ID).
		Str("from", string(order.Status)).
		Str("to", string(target)).
		Msg("order status updated")

	return s.api.AdminOrder(ctx, order.ID)
}

// PlaceOrderInput is the checkout form data; the cart supplies the lines.
type PlaceOrderInput struct {
	DeliveryDate        time.Time
	CustomerName        string
	CustomerPhoneNumber string
}

// PlaceOrder creates an order on the tenant's orders endpoint from the
// current cart. The delivery date must not precede the cart's computed
// minimum; the cart is emptied only after the backend accepts the order.
func (s *OrderService) PlaceOrder(ctx context.Context, subdomain string, in PlaceOrderInput) (*domain.Order, error) {
	if s.session.User() == nil {
		return nil, domain.ErrNotAuthenticated
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := s.cart.ValidateDeliveryDate(in.DeliveryDate, s.now()); err != nil {
		return nil, err
	}

	lines := make([]ports.CreateOrderItemInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, ports.CreateOrderItemInput{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	order, err := s.api.CreateOrder(ctx, subdomain, ports.CreateOrderInput{
		Items:               lines,
		DeliveryDate:        in.DeliveryDate,
		CustomerName:        in.CustomerName,
		CustomerPhoneNumber: in.CustomerPhoneNumber,
		IdempotencyKey:      uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear(ctx)
	s.log.Info().Str("order_id", order.ID).Str("subdomain", subdomain).Msg("order placed")
	return order, nil
}
