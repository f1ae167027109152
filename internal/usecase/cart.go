package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// CartUseCase mutates carts and resolves which cart a request addresses:
// the authenticated user's open cart first, the visitor-token cart second.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Current returns the cart addressed by the request, ErrNoCart when neither
// the user nor the visitor token has one.
func (u *CartUseCase) Current(ctx context.Context, userID *int64, token *uuid.UUID) (*model.Cart, error) {
	cart, err := u.resolve(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddProduct puts one unit of the product into the cart, creating the cart
// lazily on the first add. The returned cart carries the token the caller
// must bind to the visitor session.
func (u *CartUseCase) AddProduct(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.Cart, *model.CartLine, bool, error) {
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, false, err
	}

	cart, err := u.resolve(ctx, userID, token)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNoCart) {
			return nil, nil, false, err
		}
		cart, err = u.carts.Create(ctx, userID)
		if err != nil {
			return nil, nil, false, err
		}
	}

	line, created, err := u.carts.AddProduct(ctx, cart.ID, product.ID)
	if err != nil {
		return nil, nil, false, err
	}
	line.Product = product
	return cart, line, created, nil
}

// RemoveOne takes a single unit of the product out of the cart.
func (u *CartUseCase) RemoveOne(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.CartLine, error) {
	cart, product, err := u.cartAndProduct(ctx, userID, token, slug)
	if err != nil {
		return nil, err
	}
	line, err := u.carts.RemoveOne(ctx, cart.ID, product.ID)
	if err != nil {
		return nil, err
	}
	line.Product = product
	return line, nil
}

// RemoveAll drops the product's line from the cart entirely.
func (u *CartUseCase) RemoveAll(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error {
	cart, product, err := u.cartAndProduct(ctx, userID, token, slug)
	if err != nil {
		return err
	}
	return u.carts.RemoveAll(ctx, cart.ID, product.ID)
}

// ApplyCoupon attaches a coupon code to the current cart.
func (u *CartUseCase) ApplyCoupon(ctx context.Context, userID *int64, token *uuid.UUID, code string) (*model.Cart, error) {
	cart, err := u.resolve(ctx, userID, token)
	if err != nil {
		return nil, err
	}
	if _, err := u.carts.ApplyCoupon(ctx, cart.ID, code); err != nil {
		return nil, err
	}
	return u.reload(ctx, cart)
}

// MergeOnLogin reconciles the visitor cart with the user's cart right after
// authentication and returns the cart the session should be bound to, nil
// when the user has none yet.
func (u *CartUseCase) MergeOnLogin(ctx context.Context, userID int64, token *uuid.UUID) (*model.Cart, error) {
	if token == nil {
		cart, err := u.carts.GetOpenByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				// A cart will be created lazily on the next add.
				return nil, nil
			}
			return nil, err
		}
		return cart, nil
	}

	anonymous, err := u.carts.GetByToken(ctx, *token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return u.MergeOnLogin(ctx, userID, nil)
		}
		return nil, err
	}

	if anonymous.UserID != nil && *anonymous.UserID == userID {
		return anonymous, nil
	}

	return u.carts.MergeInto(ctx, userID, anonymous.ID)
}

func (u *CartUseCase) cartAndProduct(ctx context.Context, userID *int64, token *uuid.UUID, slug string) (*model.Cart, *model.Product, error) {
	cart, err := u.resolve(ctx, userID, token)
	if err != nil {
		return nil, nil, err
	}
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	return cart, product, nil
}

func (u *CartUseCase) resolve(ctx context.Context, userID *int64, token *uuid.UUID) (*model.Cart, error) {
	if userID != nil {
		cart, err := u.carts.GetOpenByUser(ctx, *userID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}
	if token != nil {
		cart, err := u.carts.GetByToken(ctx, *token)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}
	return nil, domainErrors.ErrNoCart
}

func (u *CartUseCase) reload(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	if cart.UserID != nil {
		return u.carts.GetOpenByUser(ctx, *cart.UserID)
	}
	return u.carts.GetByToken(ctx, cart.Token)
}
