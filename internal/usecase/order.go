package usecase

import (
	"context"
	"fmt"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// OrderUseCase lists orders and manages line fulfilment status.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListForUser returns the caller's orders. Staff see every order.
func (u *OrderUseCase) ListForUser(ctx context.Context, userID int64, staff bool) ([]model.Order, error) {
	if staff {
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByUser(ctx, userID)
}

// UpdateLineStatus moves an order line through fulfilment. Staff only.
func (u *OrderUseCase) UpdateLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error {
	if !model.ValidOrderLineStatus(status) {
		return fmt.Errorf("unknown order line status %q", status)
	}
	return u.orders.UpdateLineStatus(ctx, lineID, status)
}
