package repository

import (
	"context"
	"time"
)

// OrdersPerDay is one aggregate row: number of paid orders on a day.
type OrdersPerDay struct {
	Day   time.Time
	Count int64
}

// ProductPurchases is one aggregate row: purchases of a product by name.
type ProductPurchases struct {
	ProductName string
	Count       int64
}

// ReportRepository computes staff aggregates over paid and done orders.
type ReportRepository interface {
	OrdersPerDay(ctx context.Context, since time.Time) ([]OrdersPerDay, error)
	MostBoughtProducts(ctx context.Context, since time.Time) ([]ProductPurchases, error)
}
