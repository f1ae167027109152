package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotInCart          = errors.New("product is not in cart")
	ErrNoPendingOrder     = errors.New("no pending order for user")
	ErrNoDefaultAddress   = errors.New("no default address of requested type")
	ErrInvalidCoupon      = errors.New("unknown coupon code")
	ErrInvalidPeriod      = errors.New("invalid report period")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNoCart             = errors.New("no active cart")
)
