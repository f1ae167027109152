package dto

import "github.com/dmarkhas/gameshop/internal/domain/repository"

// OrdersPerDayResponse is one aggregate row of the orders dashboard.
type OrdersPerDayResponse struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// NewOrdersPerDayResponse maps aggregate rows to their API shape.
func NewOrdersPerDayResponse(rows []repository.OrdersPerDay) []OrdersPerDayResponse {
	result := make([]OrdersPerDayResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, OrdersPerDayResponse{
			Day:   r.Day.Format("2006-01-02"),
			Count: r.Count,
		})
	}
	return result
}

// ProductPurchasesResponse is one aggregate row of the products dashboard.
type ProductPurchasesResponse struct {
	Product string `json:"product"`
	Count   int64  `json:"count"`
}

// NewProductPurchasesResponse maps aggregate rows to their API shape.
func NewProductPurchasesResponse(rows []repository.ProductPurchases) []ProductPurchasesResponse {
	result := make([]ProductPurchasesResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, ProductPurchasesResponse{
			Product: r.ProductName,
			Count:   r.Count,
		})
	}
	return result
}
