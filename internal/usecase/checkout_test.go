package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
	testhelpers "github.com/dmarkhas/gameshop/internal/test"
)

type confirmerStub struct {
	calls []int64
}

func (c *confirmerStub) OrderConfirmation(user *model.User, order *model.Order) {
	c.calls = append(c.calls, order.ID)
}

type recorderStub struct {
	recorded [][]int64
	err      error
}

func (r *recorderStub) RecordPurchase(ctx context.Context, productIDs []int64) error {
	r.recorded = append(r.recorded, productIDs)
	return r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openCartForUser(userID int64) *model.Cart {
	return &model.Cart{
		ID:     1,
		Token:  uuid.New(),
		UserID: &userID,
		Status: model.CartStatusOpen,
		Lines:  []model.CartLine{{ID: 1, CartID: 1, ProductID: 3, Quantity: 2}},
	}
}

func newCheckoutUseCase(
	carts *testhelpers.CartRepositoryStub,
	orders *testhelpers.OrderRepositoryStub,
	addresses *testhelpers.AddressRepositoryStub,
	users *testhelpers.UserRepositoryStub,
	confirmer Confirmer,
	recorder PurchaseRecorder,
) *CheckoutUseCase {
	if users == nil {
		users = testhelpers.NewUserRepositoryStub()
	}
	return NewCheckoutUseCase(carts, orders, addresses, users, confirmer, recorder, discardLogger())
}

func TestCheckoutCreateOrderWithExplicitAddresses(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{}
	uc := newCheckoutUseCase(&testhelpers.CartRepositoryStub{}, orders, &testhelpers.AddressRepositoryStub{}, nil, nil, nil)

	shipping, billing := int64Ptr(10), int64Ptr(11)
	order, err := uc.CreateOrder(context.Background(), 5, shipping, billing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ShippingAddressID == nil || *order.ShippingAddressID != 10 {
		t.Fatalf("shipping address not passed through: %v", order.ShippingAddressID)
	}
	if order.BillingAddressID == nil || *order.BillingAddressID != 11 {
		t.Fatalf("billing address not passed through: %v", order.BillingAddressID)
	}
}

func TestCheckoutCreateOrderFallsBackToDefaults(t *testing.T) {
	addresses := &testhelpers.AddressRepositoryStub{
		Addresses: []model.Address{
			{ID: 20, UserID: 5, Type: model.AddressTypeShipping, IsDefault: true},
			{ID: 21, UserID: 5, Type: model.AddressTypeBilling, IsDefault: true},
		},
	}
	orders := &testhelpers.OrderRepositoryStub{}
	uc := newCheckoutUseCase(&testhelpers.CartRepositoryStub{}, orders, addresses, nil, nil, nil)

	order, err := uc.CreateOrder(context.Background(), 5, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ShippingAddressID == nil || *order.ShippingAddressID != 20 {
		t.Fatalf("expected default shipping address, got %v", order.ShippingAddressID)
	}
	if order.BillingAddressID == nil || *order.BillingAddressID != 21 {
		t.Fatalf("expected default billing address, got %v", order.BillingAddressID)
	}
}

func TestCheckoutCreateOrderNoDefaultAddress(t *testing.T) {
	uc := newCheckoutUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.OrderRepositoryStub{}, &testhelpers.AddressRepositoryStub{}, nil, nil, nil)

	if _, err := uc.CreateOrder(context.Background(), 5, nil, nil); !errors.Is(err, domainErrors.ErrNoDefaultAddress) {
		t.Fatalf("expected ErrNoDefaultAddress, got %v", err)
	}
}

func TestCheckoutPayPreconditions(t *testing.T) {
	// No cart at all.
	uc := newCheckoutUseCase(&testhelpers.CartRepositoryStub{}, &testhelpers.OrderRepositoryStub{}, &testhelpers.AddressRepositoryStub{}, nil, nil, nil)
	if _, err := uc.Pay(context.Background(), 5); !errors.Is(err, domainErrors.ErrNoCart) {
		t.Fatalf("expected ErrNoCart, got %v", err)
	}

	// Cart exists but has no lines.
	emptyCart := openCartForUser(5)
	emptyCart.Lines = nil
	carts := &testhelpers.CartRepositoryStub{Cart: emptyCart}
	uc = newCheckoutUseCase(carts, &testhelpers.OrderRepositoryStub{}, &testhelpers.AddressRepositoryStub{}, nil, nil, nil)
	if _, err := uc.Pay(context.Background(), 5); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	// Cart is fine but checkout never created a pending order.
	carts = &testhelpers.CartRepositoryStub{Cart: openCartForUser(5)}
	uc = newCheckoutUseCase(carts, &testhelpers.OrderRepositoryStub{}, &testhelpers.AddressRepositoryStub{}, nil, nil, nil)
	if _, err := uc.Pay(context.Background(), 5); !errors.Is(err, domainErrors.ErrNoPendingOrder) {
		t.Fatalf("expected ErrNoPendingOrder, got %v", err)
	}
}

func TestCheckoutPaySuccessRunsSideEffects(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{Cart: openCartForUser(5)}
	paid := &model.Order{ID: 42, UserID: 5, Status: model.OrderStatusPaid}
	orders := &testhelpers.OrderRepositoryStub{
		GetNewByUserFn: func(ctx context.Context, userID int64) (*model.Order, error) {
			return &model.Order{ID: 42, UserID: userID, Status: model.OrderStatusNew}, nil
		},
		FinalizeCheckoutFn: func(ctx context.Context, cartID int64) (*repository.CheckoutResult, error) {
			return &repository.CheckoutResult{
				Order:      paid,
				Payment:    &model.Payment{ID: 1, Amount: decimal.NewFromInt(100)},
				ProductIDs: []int64{3, 8},
			}, nil
		},
	}
	users := testhelpers.NewUserRepositoryStub()
	if _, err := users.Create(context.Background(), "buyer@example.com", "hash"); err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}
	// The stub assigns ID 1; rebind it to the paying user.
	users.ByID[5] = users.ByID[1]

	confirmer := &confirmerStub{}
	recorder := &recorderStub{}
	uc := newCheckoutUseCase(carts, orders, &testhelpers.AddressRepositoryStub{}, users, confirmer, recorder)

	order, err := uc.Pay(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPaid {
		t.Fatalf("expected PAID order, got %s", order.Status)
	}
	if len(confirmer.calls) != 1 || confirmer.calls[0] != 42 {
		t.Fatalf("expected one confirmation for order 42, got %v", confirmer.calls)
	}
	if len(recorder.recorded) != 1 || len(recorder.recorded[0]) != 2 {
		t.Fatalf("expected product ids recorded once, got %v", recorder.recorded)
	}
}

func TestCheckoutPaySurvivesRecorderFailure(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{Cart: openCartForUser(5)}
	orders := &testhelpers.OrderRepositoryStub{
		GetNewByUserFn: func(ctx context.Context, userID int64) (*model.Order, error) {
			return &model.Order{ID: 42, UserID: userID, Status: model.OrderStatusNew}, nil
		},
		FinalizeCheckoutFn: func(ctx context.Context, cartID int64) (*repository.CheckoutResult, error) {
			return &repository.CheckoutResult{
				Order:      &model.Order{ID: 42, UserID: 5, Status: model.OrderStatusPaid},
				Payment:    &model.Payment{ID: 1},
				ProductIDs: []int64{3},
			}, nil
		},
	}
	recorder := &recorderStub{err: errors.New("redis down")}
	uc := newCheckoutUseCase(carts, orders, &testhelpers.AddressRepositoryStub{}, nil, nil, recorder)

	if _, err := uc.Pay(context.Background(), 5); err != nil {
		t.Fatalf("payment must not fail on recorder errors, got %v", err)
	}
}
