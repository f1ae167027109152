package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry sold by the shop.
type Product struct {
	ID            int64
	Name          string
	Slug          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	Active        bool
	InStock       bool
	UpdatedAt     time.Time
}

// EffectivePrice returns the discount price when one is set.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
