package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// CartRepository describes persistence operations with carts and their lines.
type CartRepository interface {
	// Create opens a new cart for the given user, or an anonymous one when
	// userID is nil.
	Create(ctx context.Context, userID *int64) (*model.Cart, error)
	// GetByToken loads an open cart (with lines and coupon) by its visitor token.
	GetByToken(ctx context.Context, token uuid.UUID) (*model.Cart, error)
	// GetOpenByUser loads the user's open cart, ErrNotFound when none.
	GetOpenByUser(ctx context.Context, userID int64) (*model.Cart, error)
	// AddProduct upserts a line: quantity starts at 1 and increments on
	// repeated adds. Returns the resulting line and whether it was created.
	AddProduct(ctx context.Context, cartID, productID int64) (*model.CartLine, bool, error)
	// RemoveOne decrements a line, deleting it at quantity 1. ErrNotInCart
	// when the product has no line in the cart.
	RemoveOne(ctx context.Context, cartID, productID int64) (*model.CartLine, error)
	// RemoveAll deletes the line unconditionally. ErrNotInCart when absent.
	RemoveAll(ctx context.Context, cartID, productID int64) error
	// ApplyCoupon attaches the coupon with the given code, ErrInvalidCoupon
	// for unknown codes.
	ApplyCoupon(ctx context.Context, cartID int64, code string) (*model.Coupon, error)
	// MergeInto reconciles an anonymous cart with the user's open cart in a
	// single transaction and returns the surviving cart.
	MergeInto(ctx context.Context, userID int64, anonymousCartID int64) (*model.Cart, error)
	// Delete removes the cart and cascades to its lines.
	Delete(ctx context.Context, cartID int64) error
	// DeleteStaleAnonymous removes anonymous open carts idle since before
	// the cutoff and reports how many were dropped.
	DeleteStaleAnonymous(ctx context.Context, cutoff time.Time) (int64, error)
}
