package model

import "time"

// OrderStatus describes the post-checkout lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew  OrderStatus = "NEW"
	OrderStatusPaid OrderStatus = "PAID"
	OrderStatusDone OrderStatus = "DONE"
)

// OrderLineStatus tracks per-line fulfillment independently of the order.
type OrderLineStatus string

const (
	OrderLineStatusProcessing OrderLineStatus = "PROCESSING"
	OrderLineStatusSent       OrderLineStatus = "SENT"
	OrderLineStatusReceived   OrderLineStatus = "RECEIVED"
	OrderLineStatusCancelled  OrderLineStatus = "CANCELLED"
)

// ValidOrderLineStatus reports whether s is one of the known line statuses.
func ValidOrderLineStatus(s OrderLineStatus) bool {
	switch s {
	case OrderLineStatusProcessing, OrderLineStatusSent, OrderLineStatusReceived, OrderLineStatusCancelled:
		return true
	}
	return false
}

// Order is the snapshot created from a cart at checkout time. Lines are
// copied from the cart, never referenced, so the cart may be deleted after
// submission.
type Order struct {
	ID                int64
	UserID            int64
	Status            OrderStatus
	ShippingAddressID *int64
	BillingAddressID  *int64
	PaymentID         *int64
	Lines             []OrderLine
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderLine is a product/quantity snapshot with its own fulfillment status,
// mutable after order creation (unlike cart lines, mutable only before).
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Status    OrderLineStatus
	Product   *Product
}
