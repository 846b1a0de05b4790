package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusReceived  OrderStatus = "Received"
	StatusCancelled OrderStatus = "Cancelled"
)

// statusProgression is the canonical forward order of the lifecycle.
// Cancelled sits outside the progression as a side branch.
var statusProgression = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusReceived,
}

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusReceived, StatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusReceived || s == StatusCancelled
}

// Next returns the next status in the forward progression. Terminal and
// unknown statuses have no successor.
func (s OrderStatus) Next() (OrderStatus, error) {
	if s.IsTerminal() {
		return "", ErrTerminalStatus
	}
	for i, st := range statusProgression {
		if st == s && i+1 < len(statusProgression) {
			return statusProgression[i+1], nil
		}
	}
	return "", ErrUnknownStatus
}

// RequiresConfirmation reports whether entering the status needs an explicit
// interactive confirmation before the update request is sent.
func (s OrderStatus) RequiresConfirmation() bool {
	return s == StatusReceived || s == StatusCancelled
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ProductName string  `json:"product_name,omitempty"`
}

// Order is the customer order aggregate as served by the backend.
type Order struct {
	ID                  string      `json:"id"`
	OrderNumber         string      `json:"order_number,omitempty"`
	OrderDate           time.Time   `json:"order_date"`
	DeliveryDate        time.Time   `json:"delivery_date"`
	TotalAmount         float64     `json:"total_amount"`
	Status              OrderStatus `json:"status"`
	Items               []OrderItem `json:"items"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhoneNumber string      `json:"customer_phone_number"`
}
