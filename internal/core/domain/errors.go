package domain

import "errors"

var (
	ErrTenantNotFound    = errors.New("tenant not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTerminalStatus    = errors.New("order status is terminal")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("access forbidden")
	ErrNotAuthenticated  = errors.New("no authenticated user")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrDeliveryTooSoon   = errors.New("delivery date before minimum")
	ErrConfirmDeclined   = errors.New("confirmation declined")
)
