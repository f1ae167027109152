package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// Confirmer dispatches an order confirmation out-of-band after checkout.
type Confirmer interface {
	OrderConfirmation(user *model.User, order *model.Order)
}

// PurchaseRecorder feeds completed purchases into the recommender.
type PurchaseRecorder interface {
	RecordPurchase(ctx context.Context, productIDs []int64) error
}

// CheckoutUseCase drives the cart-to-paid-order transition.
type CheckoutUseCase struct {
	carts     repository.CartRepository
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	users     repository.UserRepository
	confirmer Confirmer
	recorder  PurchaseRecorder
	logger    *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	carts repository.CartRepository,
	orders repository.OrderRepository,
	addresses repository.AddressRepository,
	users repository.UserRepository,
	confirmer Confirmer,
	recorder PurchaseRecorder,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:     carts,
		orders:    orders,
		addresses: addresses,
		users:     users,
		confirmer: confirmer,
		recorder:  recorder,
		logger:    logger,
	}
}

// CreateOrder opens (or refreshes) the user's pending order with the chosen
// addresses. A nil identifier means "use my default of that type" and fails
// with ErrNoDefaultAddress when no default exists. Re-running checkout
// before payment only updates the addresses.
func (u *CheckoutUseCase) CreateOrder(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error) {
	shippingID, err := u.selectAddress(ctx, userID, model.AddressTypeShipping, shippingAddressID)
	if err != nil {
		return nil, err
	}
	billingID, err := u.selectAddress(ctx, userID, model.AddressTypeBilling, billingAddressID)
	if err != nil {
		return nil, err
	}
	return u.orders.UpsertNew(ctx, userID, shippingID, billingID)
}

// Submit materializes the cart's lines onto the pending order and closes
// the cart. Fails with ErrNoPendingOrder when CreateOrder did not run first.
func (u *CheckoutUseCase) Submit(ctx context.Context, cartID int64) (*model.Order, error) {
	return u.orders.SubmitCart(ctx, cartID)
}

// Pay finalizes checkout. Preconditions are checked in order: an open cart,
// a non-empty cart, a pending order; the first failure wins. The storage
// transition itself is atomic, and the confirmation plus co-purchase
// recording run only after it committed.
func (u *CheckoutUseCase) Pay(ctx context.Context, userID int64) (*model.Order, error) {
	cart, err := u.carts.GetOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoCart
		}
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domainErrors.ErrEmptyCart
	}
	if _, err := u.orders.GetNewByUser(ctx, userID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNoPendingOrder
		}
		return nil, err
	}

	result, err := u.orders.FinalizeCheckout(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	u.afterCheckout(ctx, userID, result)
	return result.Order, nil
}

// afterCheckout runs the fire-and-forget side effects. Their failure never
// surfaces to the buyer: the order is already paid.
func (u *CheckoutUseCase) afterCheckout(ctx context.Context, userID int64, result *repository.CheckoutResult) {
	if u.recorder != nil {
		if err := u.recorder.RecordPurchase(ctx, result.ProductIDs); err != nil {
			u.logger.Warn("recording co-purchases failed",
				slog.Int64("order_id", result.Order.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if u.confirmer == nil {
		return
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		u.logger.Warn("loading user for confirmation failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		return
	}
	u.confirmer.OrderConfirmation(user, result.Order)
}

func (u *CheckoutUseCase) selectAddress(ctx context.Context, userID int64, addressType model.AddressType, explicit *int64) (*int64, error) {
	if explicit != nil {
		return explicit, nil
	}
	addr, err := u.addresses.GetDefault(ctx, userID, addressType)
	if err != nil {
		return nil, err
	}
	return &addr.ID, nil
}
