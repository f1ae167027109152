package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users   map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
	Touched []int64
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TouchLastLogin records which users had their login stamped.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Touched = append(s.Touched, id)
	return nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn       func(context.Context, *model.Product) (*model.Product, error)
	GetBySlugFn    func(context.Context, string) (*model.Product, error)
	ListActiveFn   func(context.Context) ([]model.Product, error)
	ListByIDsFn    func(context.Context, []int64) ([]model.Product, error)
	RandomSampleFn func(context.Context, int, []int64) ([]model.Product, error)

	Products []model.Product
}

// Create delegates to override or appends to the in-memory catalog.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	product.ID = int64(len(s.Products) + 1)
	s.Products = append(s.Products, *product)
	return product, nil
}

// GetBySlug returns a matching product from the configured slice.
func (s *ProductRepositoryStub) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if s.GetBySlugFn != nil {
		return s.GetBySlugFn(ctx, slug)
	}
	for _, p := range s.Products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive returns the configured catalog.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	return s.Products, nil
}

// ListByIDs resolves identifiers against the configured catalog.
func (s *ProductRepositoryStub) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.ListByIDsFn != nil {
		return s.ListByIDsFn(ctx, ids)
	}
	var result []model.Product
	for _, id := range ids {
		for _, p := range s.Products {
			if p.ID == id {
				result = append(result, p)
			}
		}
	}
	return result, nil
}

// RandomSample returns the first products not excluded, up to the limit.
func (s *ProductRepositoryStub) RandomSample(ctx context.Context, limit int, exclude []int64) ([]model.Product, error) {
	if s.RandomSampleFn != nil {
		return s.RandomSampleFn(ctx, limit, exclude)
	}
	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	var result []model.Product
	for _, p := range s.Products {
		if len(result) == limit {
			break
		}
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// CartRepositoryStub allows tests to customize cart behaviour.
type CartRepositoryStub struct {
	CreateFn               func(context.Context, *int64) (*model.Cart, error)
	GetByTokenFn           func(context.Context, uuid.UUID) (*model.Cart, error)
	GetOpenByUserFn        func(context.Context, int64) (*model.Cart, error)
	AddProductFn           func(context.Context, int64, int64) (*model.CartLine, bool, error)
	RemoveOneFn            func(context.Context, int64, int64) (*model.CartLine, error)
	RemoveAllFn            func(context.Context, int64, int64) error
	ApplyCouponFn          func(context.Context, int64, string) (*model.Coupon, error)
	MergeIntoFn            func(context.Context, int64, int64) (*model.Cart, error)
	DeleteFn               func(context.Context, int64) error
	DeleteStaleAnonymousFn func(context.Context, time.Time) (int64, error)

	Cart *model.Cart
}

// Create delegates to override or returns a fresh cart for the user.
func (s *CartRepositoryStub) Create(ctx context.Context, userID *int64) (*model.Cart, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID)
	}
	cart := &model.Cart{ID: 1, Token: uuid.New(), UserID: userID, Status: model.CartStatusOpen}
	s.Cart = cart
	return cart, nil
}

// GetByToken returns the configured cart when the token matches.
func (s *CartRepositoryStub) GetByToken(ctx context.Context, token uuid.UUID) (*model.Cart, error) {
	if s.GetByTokenFn != nil {
		return s.GetByTokenFn(ctx, token)
	}
	if s.Cart != nil && s.Cart.Token == token {
		return s.Cart, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetOpenByUser returns the configured cart when owned by the user.
func (s *CartRepositoryStub) GetOpenByUser(ctx context.Context, userID int64) (*model.Cart, error) {
	if s.GetOpenByUserFn != nil {
		return s.GetOpenByUserFn(ctx, userID)
	}
	if s.Cart != nil && s.Cart.UserID != nil && *s.Cart.UserID == userID {
		return s.Cart, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddProduct delegates to override or reports a created line.
func (s *CartRepositoryStub) AddProduct(ctx context.Context, cartID, productID int64) (*model.CartLine, bool, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, cartID, productID)
	}
	return &model.CartLine{CartID: cartID, ProductID: productID, Quantity: 1}, true, nil
}

// RemoveOne delegates to override or reports the product missing.
func (s *CartRepositoryStub) RemoveOne(ctx context.Context, cartID, productID int64) (*model.CartLine, error) {
	if s.RemoveOneFn != nil {
		return s.RemoveOneFn(ctx, cartID, productID)
	}
	return nil, domainErrors.ErrNotInCart
}

// RemoveAll delegates to override or reports the product missing.
func (s *CartRepositoryStub) RemoveAll(ctx context.Context, cartID, productID int64) error {
	if s.RemoveAllFn != nil {
		return s.RemoveAllFn(ctx, cartID, productID)
	}
	return domainErrors.ErrNotInCart
}

// ApplyCoupon delegates to override or rejects the code.
func (s *CartRepositoryStub) ApplyCoupon(ctx context.Context, cartID int64, code string) (*model.Coupon, error) {
	if s.ApplyCouponFn != nil {
		return s.ApplyCouponFn(ctx, cartID, code)
	}
	return nil, domainErrors.ErrInvalidCoupon
}

// MergeInto delegates to override or returns the configured cart.
func (s *CartRepositoryStub) MergeInto(ctx context.Context, userID, anonymousCartID int64) (*model.Cart, error) {
	if s.MergeIntoFn != nil {
		return s.MergeIntoFn(ctx, userID, anonymousCartID)
	}
	if s.Cart == nil {
		return nil, domainErrors.ErrNotFound
	}
	s.Cart.UserID = &userID
	return s.Cart, nil
}

// Delete delegates to override or succeeds silently.
func (s *CartRepositoryStub) Delete(ctx context.Context, cartID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, cartID)
	}
	return nil
}

// DeleteStaleAnonymous delegates to override or reports nothing removed.
func (s *CartRepositoryStub) DeleteStaleAnonymous(ctx context.Context, cutoff time.Time) (int64, error) {
	if s.DeleteStaleAnonymousFn != nil {
		return s.DeleteStaleAnonymousFn(ctx, cutoff)
	}
	return 0, nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	UpsertNewFn        func(context.Context, int64, *int64, *int64) (*model.Order, error)
	GetNewByUserFn     func(context.Context, int64) (*model.Order, error)
	SubmitCartFn       func(context.Context, int64) (*model.Order, error)
	FinalizeCheckoutFn func(context.Context, int64) (*repository.CheckoutResult, error)
	ListByUserFn       func(context.Context, int64) ([]model.Order, error)
	ListAllFn          func(context.Context) ([]model.Order, error)
	UpdateLineStatusFn func(context.Context, int64, model.OrderLineStatus) error

	Orders      []model.Order
	UpdateCalls []LineStatusCall
}

// LineStatusCall stores information about UpdateLineStatus invocations.
type LineStatusCall struct {
	LineID int64
	Status model.OrderLineStatus
}

// UpsertNew delegates to override or returns a pending order.
func (s *OrderRepositoryStub) UpsertNew(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error) {
	if s.UpsertNewFn != nil {
		return s.UpsertNewFn(ctx, userID, shippingAddressID, billingAddressID)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusNew, ShippingAddressID: shippingAddressID, BillingAddressID: billingAddressID}, nil
}

// GetNewByUser delegates to override or reports no pending order.
func (s *OrderRepositoryStub) GetNewByUser(ctx context.Context, userID int64) (*model.Order, error) {
	if s.GetNewByUserFn != nil {
		return s.GetNewByUserFn(ctx, userID)
	}
	return nil, domainErrors.ErrNotFound
}

// SubmitCart delegates to override or reports no pending order.
func (s *OrderRepositoryStub) SubmitCart(ctx context.Context, cartID int64) (*model.Order, error) {
	if s.SubmitCartFn != nil {
		return s.SubmitCartFn(ctx, cartID)
	}
	return nil, domainErrors.ErrNoPendingOrder
}

// FinalizeCheckout delegates to override or reports no pending order.
func (s *OrderRepositoryStub) FinalizeCheckout(ctx context.Context, cartID int64) (*repository.CheckoutResult, error) {
	if s.FinalizeCheckoutFn != nil {
		return s.FinalizeCheckoutFn(ctx, cartID)
	}
	return nil, domainErrors.ErrNoPendingOrder
}

// ListByUser returns orders from the configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListAll returns every configured order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

// UpdateLineStatus records update invocations.
func (s *OrderRepositoryStub) UpdateLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error {
	if s.UpdateLineStatusFn != nil {
		return s.UpdateLineStatusFn(ctx, lineID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, LineStatusCall{LineID: lineID, Status: status})
	return nil
}

// AddressRepositoryStub allows tests to customize address behaviour.
type AddressRepositoryStub struct {
	SaveFn       func(context.Context, *model.Address) (*model.Address, error)
	ListByUserFn func(context.Context, int64) ([]model.Address, error)
	GetDefaultFn func(context.Context, int64, model.AddressType) (*model.Address, error)
	DeleteFn     func(context.Context, int64, int64) error

	Addresses []model.Address
}

// Save delegates to override or appends to the configured slice.
func (s *AddressRepositoryStub) Save(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, address)
	}
	address.ID = int64(len(s.Addresses) + 1)
	s.Addresses = append(s.Addresses, *address)
	return address, nil
}

// ListByUser returns the user's addresses from the configured slice.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Address
	for _, a := range s.Addresses {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

// GetDefault returns the default address of the type, or the taxonomy error.
func (s *AddressRepositoryStub) GetDefault(ctx context.Context, userID int64, addressType model.AddressType) (*model.Address, error) {
	if s.GetDefaultFn != nil {
		return s.GetDefaultFn(ctx, userID, addressType)
	}
	for _, a := range s.Addresses {
		if a.UserID == userID && a.Type == addressType && a.IsDefault {
			address := a
			return &address, nil
		}
	}
	return nil, domainErrors.ErrNoDefaultAddress
}

// Delete removes the address from the configured slice.
func (s *AddressRepositoryStub) Delete(ctx context.Context, userID, addressID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, addressID)
	}
	for i, a := range s.Addresses {
		if a.UserID == userID && a.ID == addressID {
			s.Addresses = append(s.Addresses[:i], s.Addresses[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ReportRepositoryStub returns precomputed aggregates.
type ReportRepositoryStub struct {
	OrdersPerDayFn func(context.Context, time.Time) ([]repository.OrdersPerDay, error)
	MostBoughtFn   func(context.Context, time.Time) ([]repository.ProductPurchases, error)
	PerDay         []repository.OrdersPerDay
	Purchases      []repository.ProductPurchases
	LastSince      time.Time
}

// OrdersPerDay returns the configured aggregate rows.
func (s *ReportRepositoryStub) OrdersPerDay(ctx context.Context, since time.Time) ([]repository.OrdersPerDay, error) {
	s.LastSince = since
	if s.OrdersPerDayFn != nil {
		return s.OrdersPerDayFn(ctx, since)
	}
	return s.PerDay, nil
}

// MostBoughtProducts returns the configured aggregate rows.
func (s *ReportRepositoryStub) MostBoughtProducts(ctx context.Context, since time.Time) ([]repository.ProductPurchases, error) {
	s.LastSince = since
	if s.MostBoughtFn != nil {
		return s.MostBoughtFn(ctx, since)
	}
	return s.Purchases, nil
}
