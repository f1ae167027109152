package repository

import (
	"context"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// AddressRepository describes persistence operations with user addresses.
type AddressRepository interface {
	// Save inserts the address. When IsDefault is set, the previous default
	// of the same (user, type) is cleared in the same transaction.
	Save(ctx context.Context, address *model.Address) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	// GetDefault returns the default address of the given type. The query is
	// defensive: should several rows claim the flag, the first wins.
	GetDefault(ctx context.Context, userID int64, addressType model.AddressType) (*model.Address, error)
	// Delete removes a user's own address; ErrNotFound for other users' rows.
	Delete(ctx context.Context, userID, addressID int64) error
}
