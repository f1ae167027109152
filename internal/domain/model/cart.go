package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartStatus describes the pre-checkout lifecycle of a cart.
type CartStatus string

const (
	CartStatusOpen      CartStatus = "OPEN"
	CartStatusSubmitted CartStatus = "SUBMITTED"
)

// Cart is a mutable collection of line items owned by a visitor session
// (UserID nil) or an authenticated user.
type Cart struct {
	ID        int64
	Token     uuid.UUID
	UserID    *int64
	Status    CartStatus
	Coupon    *Coupon
	Lines     []CartLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine holds one product and its quantity. The (cart, product) pair is
// unique; repeated adds increment quantity instead of creating a new line.
type CartLine struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
	Product   *Product
}

// LineTotal is the effective product price multiplied by quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// IsEmpty reports whether the cart holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// Total sums line totals and subtracts the coupon amount once when a coupon
// is attached. The result is intentionally not clamped at zero: a coupon
// larger than the cart contents yields a negative total.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	if c.Coupon != nil {
		total = total.Sub(c.Coupon.Amount)
	}
	return total
}

// DistinctProductNames returns the set of product names among the lines.
// The merge resolver matches lines across carts by name, not identity.
func (c Cart) DistinctProductNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.Lines))
	for _, l := range c.Lines {
		if l.Product != nil {
			names[l.Product.Name] = struct{}{}
		}
	}
	return names
}
