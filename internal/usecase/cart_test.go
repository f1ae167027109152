package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	testhelpers "github.com/dmarkhas/gameshop/internal/test"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCartUseCaseResolvePrefersUserCart(t *testing.T) {
	userCart := &model.Cart{ID: 1, Token: uuid.New(), UserID: int64Ptr(5), Status: model.CartStatusOpen}
	anonToken := uuid.New()
	carts := &testhelpers.CartRepositoryStub{
		GetOpenByUserFn: func(ctx context.Context, userID int64) (*model.Cart, error) {
			return userCart, nil
		},
		GetByTokenFn: func(ctx context.Context, token uuid.UUID) (*model.Cart, error) {
			t.Fatalf("token lookup must not run when the user has a cart")
			return nil, nil
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.Current(context.Background(), int64Ptr(5), &anonToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != userCart.ID {
		t.Fatalf("expected the user's cart, got %d", got.ID)
	}
}

func TestCartUseCaseResolveFallsBackToToken(t *testing.T) {
	token := uuid.New()
	anonCart := &model.Cart{ID: 2, Token: token, Status: model.CartStatusOpen}
	carts := &testhelpers.CartRepositoryStub{Cart: anonCart}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.Current(context.Background(), int64Ptr(5), &token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != anonCart.ID {
		t.Fatalf("expected the visitor cart, got %d", got.ID)
	}
}

func TestCartUseCaseCurrentWithoutAnyCart(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.ProductRepositoryStub{})

	if _, err := uc.Current(context.Background(), nil, nil); !errors.Is(err, domainErrors.ErrNoCart) {
		t.Fatalf("expected ErrNoCart, got %v", err)
	}
}

func TestCartUseCaseAddCreatesCartLazily(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 3, Name: "Chess", Slug: "chess"}},
	}
	var createdFor *int64
	carts := &testhelpers.CartRepositoryStub{
		CreateFn: func(ctx context.Context, userID *int64) (*model.Cart, error) {
			createdFor = userID
			return &model.Cart{ID: 9, Token: uuid.New(), UserID: userID, Status: model.CartStatusOpen}, nil
		},
		AddProductFn: func(ctx context.Context, cartID, productID int64) (*model.CartLine, bool, error) {
			if cartID != 9 || productID != 3 {
				t.Fatalf("unexpected add: cart=%d product=%d", cartID, productID)
			}
			return &model.CartLine{CartID: cartID, ProductID: productID, Quantity: 1}, true, nil
		},
	}
	uc := NewCartUseCase(carts, products)

	cart, line, created, err := uc.AddProduct(context.Background(), int64Ptr(5), nil, "chess")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.ID != 9 {
		t.Fatalf("expected the lazily created cart, got %d", cart.ID)
	}
	if !created || line.Quantity != 1 {
		t.Fatalf("expected a fresh line with quantity 1, got created=%v qty=%d", created, line.Quantity)
	}
	if createdFor == nil || *createdFor != 5 {
		t.Fatalf("cart must be created for the authenticated user, got %v", createdFor)
	}
	if line.Product == nil || line.Product.Slug != "chess" {
		t.Fatalf("expected product attached to the line")
	}
}

func TestCartUseCaseAddUnknownProduct(t *testing.T) {
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.ProductRepositoryStub{})

	if _, _, _, err := uc.AddProduct(context.Background(), nil, nil, "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartUseCaseRemoveOneMissingLine(t *testing.T) {
	token := uuid.New()
	carts := &testhelpers.CartRepositoryStub{
		Cart: &model.Cart{ID: 1, Token: token, Status: model.CartStatusOpen},
	}
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: 3, Name: "Chess", Slug: "chess"}},
	}
	uc := NewCartUseCase(carts, products)

	if _, err := uc.RemoveOne(context.Background(), nil, &token, "chess"); !errors.Is(err, domainErrors.ErrNotInCart) {
		t.Fatalf("expected ErrNotInCart, got %v", err)
	}
}

func TestCartUseCaseApplyCouponInvalidCode(t *testing.T) {
	token := uuid.New()
	carts := &testhelpers.CartRepositoryStub{
		Cart: &model.Cart{ID: 1, Token: token, Status: model.CartStatusOpen},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	if _, err := uc.ApplyCoupon(context.Background(), nil, &token, "NOPE"); !errors.Is(err, domainErrors.ErrInvalidCoupon) {
		t.Fatalf("expected ErrInvalidCoupon, got %v", err)
	}
}

func TestCartUseCaseMergeOnLoginWithoutToken(t *testing.T) {
	userCart := &model.Cart{ID: 4, Token: uuid.New(), UserID: int64Ptr(5), Status: model.CartStatusOpen}
	carts := &testhelpers.CartRepositoryStub{Cart: userCart}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.MergeOnLogin(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != userCart.ID {
		t.Fatalf("expected the user's own cart, got %d", got.ID)
	}

	// No cart anywhere: nil result, no error.
	empty := NewCartUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.ProductRepositoryStub{})
	got, err = empty.MergeOnLogin(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no cart, got %+v", got)
	}
}

func TestCartUseCaseMergeOnLoginStaleToken(t *testing.T) {
	stale := uuid.New()
	userCart := &model.Cart{ID: 4, Token: uuid.New(), UserID: int64Ptr(5), Status: model.CartStatusOpen}
	carts := &testhelpers.CartRepositoryStub{
		GetByTokenFn: func(ctx context.Context, token uuid.UUID) (*model.Cart, error) {
			return nil, domainErrors.ErrNotFound
		},
		GetOpenByUserFn: func(ctx context.Context, userID int64) (*model.Cart, error) {
			return userCart, nil
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.MergeOnLogin(context.Background(), 5, &stale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != userCart.ID {
		t.Fatalf("expected fallback to the user's cart, got %d", got.ID)
	}
}

func TestCartUseCaseMergeOnLoginRunsMerge(t *testing.T) {
	token := uuid.New()
	anon := &model.Cart{ID: 7, Token: token, Status: model.CartStatusOpen}
	merged := &model.Cart{ID: 4, Token: uuid.New(), UserID: int64Ptr(5), Status: model.CartStatusOpen}
	var mergedAnonID int64
	carts := &testhelpers.CartRepositoryStub{
		GetByTokenFn: func(ctx context.Context, got uuid.UUID) (*model.Cart, error) {
			if got != token {
				t.Fatalf("unexpected token lookup: %s", got)
			}
			return anon, nil
		},
		MergeIntoFn: func(ctx context.Context, userID, anonymousCartID int64) (*model.Cart, error) {
			mergedAnonID = anonymousCartID
			return merged, nil
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.MergeOnLogin(context.Background(), 5, &token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != merged.ID {
		t.Fatalf("expected the merged cart, got %d", got.ID)
	}
	if mergedAnonID != anon.ID {
		t.Fatalf("expected merge of cart %d, got %d", anon.ID, mergedAnonID)
	}
}

func TestCartUseCaseMergeOnLoginOwnCartToken(t *testing.T) {
	token := uuid.New()
	own := &model.Cart{ID: 7, Token: token, UserID: int64Ptr(5), Status: model.CartStatusOpen}
	carts := &testhelpers.CartRepositoryStub{
		GetByTokenFn: func(ctx context.Context, got uuid.UUID) (*model.Cart, error) {
			return own, nil
		},
		MergeIntoFn: func(ctx context.Context, userID, anonymousCartID int64) (*model.Cart, error) {
			t.Fatalf("merge must not run for the user's own cart")
			return nil, nil
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})

	got, err := uc.MergeOnLogin(context.Background(), 5, &token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != own.ID {
		t.Fatalf("expected the cart itself, got %d", got.ID)
	}
}
