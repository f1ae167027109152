package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// CartLineResponse is one cart line with its running total.
type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse is the full cart as exposed over the API. The visitor token
// travels in a cookie, never in the body.
type CartResponse struct {
	Lines  []CartLineResponse `json:"lines"`
	Count  int                `json:"count"`
	Coupon *string            `json:"coupon,omitempty"`
	Total  decimal.Decimal    `json:"total"`
}

// NewCartResponse maps a cart to its API shape.
func NewCartResponse(cart *model.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		line := CartLineResponse{Quantity: l.Quantity, LineTotal: l.LineTotal()}
		if l.Product != nil {
			line.Product = NewProductResponse(*l.Product)
		}
		lines = append(lines, line)
	}
	resp := CartResponse{
		Lines: lines,
		Count: cart.Count(),
		Total: cart.Total(),
	}
	if cart.Coupon != nil {
		resp.Coupon = &cart.Coupon.Code
	}
	return resp
}

// CouponRequest carries a coupon code to apply.
type CouponRequest struct {
	Code string `json:"code" binding:"required"`
}
