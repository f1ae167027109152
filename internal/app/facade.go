package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
	"github.com/dmarkhas/gameshop/internal/usecase"
)

// ShopFacade is the single application surface the HTTP layer and workers
// talk to. It delegates to the use cases and owns no logic of its own.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
	carts    *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	address  *usecase.AddressUseCase
	reports  *usecase.ReportUseCase
	cartRepo repository.CartRepository
}

func NewShopFacade(
	auth *usecase.AuthUseCase,
	products *usecase.ProductUseCase,
	carts *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	address *usecase.AddressUseCase,
	reports *usecase.ReportUseCase,
	cartRepo repository.CartRepository,
) *ShopFacade {
	return &ShopFacade{
		auth:     auth,
		products: products,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		address:  address,
		reports:  reports,
		cartRepo: cartRepo,
	}
}

func (f *ShopFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *ShopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) IsStaff(ctx context.Context, userID int64) (bool, error) {
	return f.auth.IsStaff(ctx, userID)
}

func (f *ShopFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.ListActive(ctx)
}

func (f *ShopFacade) Product(ctx context.Context, slug string) (*model.Product, error) {
	return f.products.GetBySlug(ctx, slug)
}

func (f *ShopFacade) Suggestions(ctx context.Context, slug string) ([]model.Product, error) {
	return f.products.Suggestions(ctx, slug)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *ShopFacade) Cart(ctx context.Context, userID *int64, token *uuid.UUID) (*model.Cart, error) {
	return f.carts.Current(ctx, userID, token)
}

func (f *ShopFacade) AddToCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.Cart, error) {
	cart, _, _, err := f.carts.AddProduct(ctx, userID, token, slug)
	if err != nil {
		return nil, err
	}
	return f.carts.Current(ctx, userID, &cart.Token)
}

func (f *ShopFacade) RemoveOneFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error {
	_, err := f.carts.RemoveOne(ctx, userID, token, slug)
	return err
}

func (f *ShopFacade) RemoveFromCart(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error {
	return f.carts.RemoveAll(ctx, userID, token, slug)
}

func (f *ShopFacade) ApplyCoupon(ctx context.Context, userID *int64, token *uuid.UUID, code string) (*model.Cart, error) {
	return f.carts.ApplyCoupon(ctx, userID, token, code)
}

func (f *ShopFacade) MergeCarts(ctx context.Context, userID int64, token *uuid.UUID) (*model.Cart, error) {
	return f.carts.MergeOnLogin(ctx, userID, token)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error) {
	return f.checkout.CreateOrder(ctx, userID, shippingAddressID, billingAddressID)
}

func (f *ShopFacade) Pay(ctx context.Context, userID int64) (*model.Order, error) {
	return f.checkout.Pay(ctx, userID)
}

func (f *ShopFacade) Orders(ctx context.Context, userID int64, staff bool) ([]model.Order, error) {
	return f.orders.ListForUser(ctx, userID, staff)
}

func (f *ShopFacade) UpdateOrderLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error {
	return f.orders.UpdateLineStatus(ctx, lineID, status)
}

func (f *ShopFacade) SaveAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	return f.address.Save(ctx, address)
}

func (f *ShopFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.address.List(ctx, userID)
}

func (f *ShopFacade) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	return f.address.Delete(ctx, userID, addressID)
}

func (f *ShopFacade) OrdersPerDay(ctx context.Context, days int) ([]repository.OrdersPerDay, error) {
	return f.reports.OrdersPerDay(ctx, days)
}

func (f *ShopFacade) MostBoughtProducts(ctx context.Context, days int) ([]repository.ProductPurchases, error) {
	return f.reports.MostBoughtProducts(ctx, days)
}

// RemoveStaleCarts serves the cleanup worker.
func (f *ShopFacade) RemoveStaleCarts(ctx context.Context, cutoff time.Time) (int64, error) {
	return f.cartRepo.DeleteStaleAnonymous(ctx, cutoff)
}
