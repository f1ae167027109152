package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	IsStaff(ctx context.Context, userID int64) (bool, error)
}

// CatalogFacade exposes the product catalog.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, slug string) (*model.Product, error)
	Suggestions(ctx context.Context, slug string) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, userID *int64, token *uuid.UUID) (*model.Cart, error)
	AddToCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.Cart, error)
	RemoveOneFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error
	RemoveFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error
	ApplyCoupon(ctx context.Context, userID *int64, token *uuid.UUID, code string) (*model.Cart, error)
	MergeCarts(ctx context.Context, userID int64, token *uuid.UUID) (*model.Cart, error)
}

// CheckoutFacade drives the order placement and payment endpoints.
type CheckoutFacade interface {
	CreateOrder(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error)
	Pay(ctx context.Context, userID int64) (*model.Order, error)
}

// OrderFacade lists orders and manages fulfillment status.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64, staff bool) ([]model.Order, error)
	UpdateOrderLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error
}

// AddressFacade provides address book operations.
type AddressFacade interface {
	SaveAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
}

// ReportFacade serves staff dashboards.
type ReportFacade interface {
	OrdersPerDay(ctx context.Context, days int) ([]repository.OrdersPerDay, error)
	MostBoughtProducts(ctx context.Context, days int) ([]repository.ProductPurchases, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
	OrderFacade
	AddressFacade
	ReportFacade
}
