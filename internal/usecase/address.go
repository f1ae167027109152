package usecase

import (
	"context"
	"fmt"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// AddressUseCase manages the user's address book.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// Save stores an address. Marking it default clears the previous default of
// the same type.
func (u *AddressUseCase) Save(ctx context.Context, address *model.Address) (*model.Address, error) {
	if !model.ValidAddressType(address.Type) {
		return nil, fmt.Errorf("unknown address type %q", address.Type)
	}
	return u.addresses.Save(ctx, address)
}

// List returns the user's addresses.
func (u *AddressUseCase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

// Delete removes one of the user's addresses.
func (u *AddressUseCase) Delete(ctx context.Context, userID, addressID int64) error {
	return u.addresses.Delete(ctx, userID, addressID)
}
