package ports

import (
	"context"
	"time"

	"github.com/bakeryhub/storefront/internal/core/domain"
)

// ListOrdersInput carries the admin order-list query parameters.
type ListOrdersInput struct {
	Status   domain.OrderStatus // optional
	DateFrom time.Time          // optional: order_date >= DateFrom
	DateTo   time.Time          // optional: order_date <= DateTo
	Search   string             // optional: partial match on customer name or order number
	Page     int                // 1-based
	Limit    int
}

// OrderPage is one page of order-list results.
type OrderPage struct {
	Items      []domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreateOrderItemInput is one line of an order placement request.
type CreateOrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderInput is posted to the tenant orders endpoint at checkout.
// The idempotency key is client-generated so a retried submit cannot place
// the same order twice.
type CreateOrderInput struct {
	Items               []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryDate        time.Time              `json:"delivery_date" validate:"required"`
	CustomerName        string                 `json:"customer_name" validate:"required"`
	CustomerPhoneNumber string                 `json:"customer_phone_number" validate:"required"`
	IdempotencyKey      string                 `json:"idempotency_key,omitempty"`
}

// OrdersAPI covers the admin order management endpoints and the tenant-scoped
// customer order endpoints.
type OrdersAPI interface {
	AdminOrders(ctx context.Context, in ListOrdersInput) (*OrderPage, error)
	AdminOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error

	MyOrders(ctx context.Context, subdomain string) ([]domain.Order, error)
	MyOrder(ctx context.Context, subdomain, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, subdomain string, in CreateOrderInput) (*domain.Order, error)
}
