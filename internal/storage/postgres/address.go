package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
)

const addressColumns = `id, user_id, street, apartment, zip_code, city, country, address_type, is_default`

func (r *addressRepository) Save(ctx context.Context, address *model.Address) (*model.Address, error) {
	saved := *address
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if address.IsDefault {
			// A new default displaces the previous one of the same type in
			// the same transaction, so two defaults can never coexist.
			const clear = `UPDATE addresses SET is_default=FALSE
                           WHERE user_id=$1 AND address_type=$2 AND is_default`
			if _, err := tx.Exec(ctx, clear, address.UserID, address.Type); err != nil {
				return err
			}
		}

		const insert = `INSERT INTO addresses (user_id, street, apartment, zip_code, city, country, address_type, is_default)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                        RETURNING id`
		return tx.QueryRow(ctx, insert,
			address.UserID, address.Street, address.Apartment, address.ZipCode,
			address.City, address.Country, address.Type, address.IsDefault,
		).Scan(&saved.ID)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Street, &a.Apartment, &a.ZipCode, &a.City, &a.Country, &a.Type, &a.IsDefault); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) GetDefault(ctx context.Context, userID int64, addressType model.AddressType) (*model.Address, error) {
	// Defensive LIMIT 1: the save path guarantees a single default, but the
	// lookup does not assume the invariant holds.
	const query = `SELECT ` + addressColumns + ` FROM addresses
                   WHERE user_id=$1 AND address_type=$2 AND is_default
                   ORDER BY id LIMIT 1`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, userID, addressType).Scan(
		&a.ID, &a.UserID, &a.Street, &a.Apartment, &a.ZipCode, &a.City, &a.Country, &a.Type, &a.IsDefault,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNoDefaultAddress
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) Delete(ctx context.Context, userID, addressID int64) error {
	const query = `DELETE FROM addresses WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, addressID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
