package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a completed checkout charge. It is immutable after
// creation and may outlive its user (UserID is nullified on user deletion).
type Payment struct {
	ID     int64
	UserID *int64
	Amount decimal.Decimal
	PaidAt time.Time
}

// Coupon is a flat discount applied to a cart by reference.
type Coupon struct {
	ID     int64
	Code   string
	Amount decimal.Decimal
}
