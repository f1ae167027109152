package dto

import (
	"time"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// CheckoutRequest selects the addresses for the pending order. A missing
// identifier means "use my default address of that type".
type CheckoutRequest struct {
	ShippingAddressID *int64 `json:"shipping_address_id"`
	BillingAddressID  *int64 `json:"billing_address_id"`
}

// OrderLineResponse is one fulfilled (or in-flight) order position.
type OrderLineResponse struct {
	ID       int64           `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Status   string          `json:"status"`
}

// OrderResponse is an order as exposed over the API.
type OrderResponse struct {
	ID                int64               `json:"id"`
	Status            string              `json:"status"`
	ShippingAddressID *int64              `json:"shipping_address_id,omitempty"`
	BillingAddressID  *int64              `json:"billing_address_id,omitempty"`
	Lines             []OrderLineResponse `json:"lines"`
	CreatedAt         time.Time           `json:"created_at"`
}

// NewOrderResponse maps an order to its API shape.
func NewOrderResponse(o model.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		line := OrderLineResponse{ID: l.ID, Quantity: l.Quantity, Status: string(l.Status)}
		if l.Product != nil {
			line.Product = NewProductResponse(*l.Product)
		}
		lines = append(lines, line)
	}
	return OrderResponse{
		ID:                o.ID,
		Status:            string(o.Status),
		ShippingAddressID: o.ShippingAddressID,
		BillingAddressID:  o.BillingAddressID,
		Lines:             lines,
		CreatedAt:         o.CreatedAt,
	}
}

// NewOrderListResponse maps an order slice to its API shape.
func NewOrderListResponse(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, NewOrderResponse(o))
	}
	return result
}

// OrderLineStatusRequest moves an order line to a new fulfillment status.
type OrderLineStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
