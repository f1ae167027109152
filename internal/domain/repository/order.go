package repository

import (
	"context"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// CheckoutResult reports what a finalized checkout produced.
type CheckoutResult struct {
	Order      *model.Order
	Payment    *model.Payment
	ProductIDs []int64
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// UpsertNew creates the user's NEW order or, when one already exists,
	// updates its addresses in place. Checkout is idempotent per user.
	UpsertNew(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error)
	// GetNewByUser returns the user's pending NEW order, ErrNotFound when none.
	GetNewByUser(ctx context.Context, userID int64) (*model.Order, error)
	// SubmitCart copies cart lines onto the user's NEW order and flips the
	// cart to SUBMITTED. ErrNoPendingOrder when no NEW order exists.
	SubmitCart(ctx context.Context, cartID int64) (*model.Order, error)
	// FinalizeCheckout runs the whole payment sequence in one transaction:
	// payment row for the cart total, line materialization, order flip to
	// PAID and cart deletion all succeed or all roll back.
	FinalizeCheckout(ctx context.Context, cartID int64) (*CheckoutResult, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// UpdateLineStatus sets the fulfillment status of a single order line.
	UpdateLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error
}
