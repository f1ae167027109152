package test

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	SuggestionsFn   func(context.Context, string) ([]model.Product, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
}

// Products returns the configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Chess", Slug: "chess"}}, nil
}

// Product returns one product by slug.
func (s CatalogFacadeStub) Product(ctx context.Context, slug string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, slug)
	}
	return &model.Product{ID: 1, Name: "Chess", Slug: slug}, nil
}

// Suggestions returns co-purchase suggestions for the slug.
func (s CatalogFacadeStub) Suggestions(ctx context.Context, slug string) ([]model.Product, error) {
	if s.SuggestionsFn != nil {
		return s.SuggestionsFn(ctx, slug)
	}
	return nil, nil
}

// CreateProduct delegates to override or echoes the product back.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 1
	return product, nil
}

// CartFacadeStub simulates cart operations for handler tests.
type CartFacadeStub struct {
	CartFn        func(context.Context, *int64, *uuid.UUID) (*model.Cart, error)
	AddFn         func(context.Context, *int64, *uuid.UUID, string) (*model.Cart, error)
	RemoveOneFn   func(context.Context, *int64, *uuid.UUID, string) error
	RemoveFn      func(context.Context, *int64, *uuid.UUID, string) error
	ApplyCouponFn func(context.Context, *int64, *uuid.UUID, string) (*model.Cart, error)
	MergeFn       func(context.Context, int64, *uuid.UUID) (*model.Cart, error)
}

// Cart returns the current cart.
func (s CartFacadeStub) Cart(ctx context.Context, userID *int64, token *uuid.UUID) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID, token)
	}
	return nil, domainErrors.ErrNoCart
}

// AddToCart puts a product into the cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, token, slug)
	}
	return &model.Cart{ID: 1, Token: uuid.New(), Status: model.CartStatusOpen}, nil
}

// RemoveOneFromCart takes one unit out of the cart.
func (s CartFacadeStub) RemoveOneFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error {
	if s.RemoveOneFn != nil {
		return s.RemoveOneFn(ctx, userID, token, slug)
	}
	return nil
}

// RemoveFromCart drops the product from the cart.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, token, slug)
	}
	return nil
}

// ApplyCoupon attaches a coupon code to the cart.
func (s CartFacadeStub) ApplyCoupon(ctx context.Context, userID *int64, token *uuid.UUID, code string) (*model.Cart, error) {
	if s.ApplyCouponFn != nil {
		return s.ApplyCouponFn(ctx, userID, token, code)
	}
	return nil, domainErrors.ErrInvalidCoupon
}

// MergeCarts reconciles the visitor cart after login.
func (s CartFacadeStub) MergeCarts(ctx context.Context, userID int64, token *uuid.UUID) (*model.Cart, error) {
	if s.MergeFn != nil {
		return s.MergeFn(ctx, userID, token)
	}
	return nil, nil
}

// CheckoutFacadeStub simulates checkout operations.
type CheckoutFacadeStub struct {
	CreateOrderFn func(context.Context, int64, *int64, *int64) (*model.Order, error)
	PayFn         func(context.Context, int64) (*model.Order, error)
}

// CreateOrder opens the pending order.
func (s CheckoutFacadeStub) CreateOrder(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, shippingAddressID, billingAddressID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusNew}, nil
}

// Pay finalizes the checkout.
func (s CheckoutFacadeStub) Pay(ctx context.Context, userID int64) (*model.Order, error) {
	if s.PayFn != nil {
		return s.PayFn(ctx, userID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPaid}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn           func(context.Context, int64, bool) ([]model.Order, error)
	UpdateLineStatusFn func(context.Context, int64, model.OrderLineStatus) error
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64, staff bool) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID, staff)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// UpdateOrderLineStatus delegates to the configured override.
func (s OrderFacadeStub) UpdateOrderLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error {
	if s.UpdateLineStatusFn != nil {
		return s.UpdateLineStatusFn(ctx, lineID, status)
	}
	return nil
}

// AddressFacadeStub simulates address book operations.
type AddressFacadeStub struct {
	SaveFn   func(context.Context, *model.Address) (*model.Address, error)
	ListFn   func(context.Context, int64) ([]model.Address, error)
	DeleteFn func(context.Context, int64, int64) error
}

// SaveAddress stores the address.
func (s AddressFacadeStub) SaveAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, address)
	}
	address.ID = 1
	return address, nil
}

// Addresses lists the user's address book.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

// DeleteAddress removes one of the user's addresses.
func (s AddressFacadeStub) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, addressID)
	}
	return nil
}

// ReportFacadeStub returns canned aggregates for staff endpoints.
type ReportFacadeStub struct {
	OrdersPerDayFn func(context.Context, int) ([]repository.OrdersPerDay, error)
	MostBoughtFn   func(context.Context, int) ([]repository.ProductPurchases, error)
}

// OrdersPerDay returns the configured per-day rows.
func (s ReportFacadeStub) OrdersPerDay(ctx context.Context, days int) ([]repository.OrdersPerDay, error) {
	if s.OrdersPerDayFn != nil {
		return s.OrdersPerDayFn(ctx, days)
	}
	return nil, nil
}

// MostBoughtProducts returns the configured purchase counts.
func (s ReportFacadeStub) MostBoughtProducts(ctx context.Context, days int) ([]repository.ProductPurchases, error) {
	if s.MostBoughtFn != nil {
		return s.MostBoughtFn(ctx, days)
	}
	return nil, nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	AddressFacadeStub
	ReportFacadeStub
}
