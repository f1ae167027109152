package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// querier is satisfied by both the pool and pgx.Tx, so cart loading helpers
// can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const cartQuery = `SELECT c.id, c.token, c.user_id, c.status, c.created_at, c.updated_at,
                          co.id, co.code, co.amount
                   FROM carts c
                   LEFT JOIN coupons co ON co.id = c.coupon_id`

func (r *cartRepository) Create(ctx context.Context, userID *int64) (*model.Cart, error) {
	const query = `INSERT INTO carts (token, user_id) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	cart := model.Cart{
		Token:  uuid.New(),
		UserID: userID,
		Status: model.CartStatusOpen,
	}
	err := r.storage.pool.QueryRow(ctx, query, cart.Token, userID).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByToken(ctx context.Context, token uuid.UUID) (*model.Cart, error) {
	query := cartQuery + ` WHERE c.token=$1 AND c.status='OPEN'`
	return loadCart(ctx, r.storage.pool, query, token)
}

func (r *cartRepository) GetOpenByUser(ctx context.Context, userID int64) (*model.Cart, error) {
	query := cartQuery + ` WHERE c.user_id=$1 AND c.status='OPEN'`
	return loadCart(ctx, r.storage.pool, query, userID)
}

func (r *cartRepository) AddProduct(ctx context.Context, cartID, productID int64) (*model.CartLine, bool, error) {
	const query = `INSERT INTO cart_lines (cart_id, product_id, quantity) VALUES ($1, $2, 1)
                   ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_lines.quantity + 1
                   RETURNING id, quantity, (xmax = 0) AS created`
	line := model.CartLine{CartID: cartID, ProductID: productID}
	var created bool
	err := r.storage.pool.QueryRow(ctx, query, cartID, productID).Scan(&line.ID, &line.Quantity, &created)
	if err != nil {
		return nil, false, err
	}
	r.touch(ctx, cartID)
	return &line, created, nil
}

func (r *cartRepository) RemoveOne(ctx context.Context, cartID, productID int64) (*model.CartLine, error) {
	line := model.CartLine{CartID: cartID, ProductID: productID}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectLine = `SELECT id, quantity FROM cart_lines WHERE cart_id=$1 AND product_id=$2 FOR UPDATE`
		err := tx.QueryRow(ctx, selectLine, cartID, productID).Scan(&line.ID, &line.Quantity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotInCart
			}
			return err
		}

		if line.Quantity > 1 {
			const decrement = `UPDATE cart_lines SET quantity = quantity - 1 WHERE id=$1`
			if _, err := tx.Exec(ctx, decrement, line.ID); err != nil {
				return err
			}
			line.Quantity--
			return nil
		}

		// Removing the last unit drops the whole line instead of leaving a
		// zero-quantity row.
		const deleteLine = `DELETE FROM cart_lines WHERE id=$1`
		if _, err := tx.Exec(ctx, deleteLine, line.ID); err != nil {
			return err
		}
		line.Quantity = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.touch(ctx, cartID)
	return &line, nil
}

func (r *cartRepository) RemoveAll(ctx context.Context, cartID, productID int64) error {
	const query = `DELETE FROM cart_lines WHERE cart_id=$1 AND product_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cartID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotInCart
	}
	r.touch(ctx, cartID)
	return nil
}

func (r *cartRepository) ApplyCoupon(ctx context.Context, cartID int64, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectCoupon = `SELECT id, code, amount FROM coupons WHERE code=$1`
		err := tx.QueryRow(ctx, selectCoupon, code).Scan(&coupon.ID, &coupon.Code, &coupon.Amount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrInvalidCoupon
			}
			return err
		}

		const attach = `UPDATE carts SET coupon_id=$1, updated_at=NOW() WHERE id=$2 AND status='OPEN'`
		tag, err := tx.Exec(ctx, attach, coupon.ID, cartID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNoCart
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

type mergeLine struct {
	id          int64
	productID   int64
	quantity    int
	productName string
}

// MergeInto reconciles the anonymous cart with the user's open cart. Lines
// are matched across carts by product NAME, tolerating duplicate catalog
// rows with identical names. The whole merge runs in one transaction.
func (r *cartRepository) MergeInto(ctx context.Context, userID int64, anonymousCartID int64) (*model.Cart, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectPrimary = `SELECT id FROM carts WHERE user_id=$1 AND status='OPEN' FOR UPDATE`
		var primaryID int64
		err := tx.QueryRow(ctx, selectPrimary, userID).Scan(&primaryID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// No primary cart: the anonymous cart becomes the user's cart.
				const adopt = `UPDATE carts SET user_id=$1, updated_at=NOW() WHERE id=$2 AND status='OPEN'`
				tag, err := tx.Exec(ctx, adopt, userID, anonymousCartID)
				if err != nil {
					return err
				}
				if tag.RowsAffected() == 0 {
					return domainErrors.ErrNotFound
				}
				return nil
			}
			return err
		}

		anonLines, err := linesWithNames(ctx, tx, anonymousCartID)
		if err != nil {
			return err
		}
		primaryLines, err := linesWithNames(ctx, tx, primaryID)
		if err != nil {
			return err
		}

		byName := make(map[string]mergeLine, len(primaryLines))
		for _, l := range primaryLines {
			if _, seen := byName[l.productName]; !seen {
				byName[l.productName] = l
			}
		}

		for _, line := range anonLines {
			if existing, ok := byName[line.productName]; ok {
				const addQuantity = `UPDATE cart_lines SET quantity = quantity + $1 WHERE id=$2`
				if _, err := tx.Exec(ctx, addQuantity, line.quantity, existing.id); err != nil {
					return err
				}
				continue
			}
			const reparent = `UPDATE cart_lines SET cart_id=$1 WHERE id=$2`
			if _, err := tx.Exec(ctx, reparent, primaryID, line.id); err != nil {
				return err
			}
		}

		// Cascade removes any lines that were absorbed by name rather than
		// reparented.
		const dropAnonymous = `DELETE FROM carts WHERE id=$1`
		if _, err := tx.Exec(ctx, dropAnonymous, anonymousCartID); err != nil {
			return err
		}

		const touchPrimary = `UPDATE carts SET updated_at=NOW() WHERE id=$1`
		_, err = tx.Exec(ctx, touchPrimary, primaryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetOpenByUser(ctx, userID)
}

func (r *cartRepository) Delete(ctx context.Context, cartID int64) error {
	const query = `DELETE FROM carts WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) DeleteStaleAnonymous(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM carts WHERE user_id IS NULL AND status='OPEN' AND updated_at < $1`
	tag, err := r.storage.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// touch bumps the cart's activity timestamp; failures only age the cart
// towards janitor cleanup, so they are logged and swallowed.
func (r *cartRepository) touch(ctx context.Context, cartID int64) {
	const query = `UPDATE carts SET updated_at=NOW() WHERE id=$1`
	if _, err := r.storage.pool.Exec(ctx, query, cartID); err != nil {
		r.storage.logger.Warn("touch cart failed", slog.Int64("cart_id", cartID), slog.String("error", err.Error()))
	}
}

func linesWithNames(ctx context.Context, q querier, cartID int64) ([]mergeLine, error) {
	const query = `SELECT l.id, l.product_id, l.quantity, p.name
                   FROM cart_lines l
                   JOIN products p ON p.id = l.product_id
                   WHERE l.cart_id=$1
                   ORDER BY l.id`
	rows, err := q.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []mergeLine
	for rows.Next() {
		var l mergeLine
		if err := rows.Scan(&l.id, &l.productID, &l.quantity, &l.productName); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func loadCart(ctx context.Context, q querier, query string, arg any) (*model.Cart, error) {
	var (
		cart         model.Cart
		couponID     *int64
		couponCode   *string
		couponAmount decimal.NullDecimal
	)
	err := q.QueryRow(ctx, query, arg).Scan(
		&cart.ID, &cart.Token, &cart.UserID, &cart.Status, &cart.CreatedAt, &cart.UpdatedAt,
		&couponID, &couponCode, &couponAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if couponID != nil && couponCode != nil && couponAmount.Valid {
		cart.Coupon = &model.Coupon{ID: *couponID, Code: *couponCode, Amount: couponAmount.Decimal}
	}

	lines, err := loadCartLines(ctx, q, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Lines = lines
	return &cart, nil
}

func loadCartLines(ctx context.Context, q querier, cartID int64) ([]model.CartLine, error) {
	const query = `SELECT l.id, l.cart_id, l.product_id, l.quantity,
                          p.id, p.name, p.slug, p.description, p.price, p.discount_price, p.active, p.in_stock, p.updated_at
                   FROM cart_lines l
                   JOIN products p ON p.id = l.product_id
                   WHERE l.cart_id=$1
                   ORDER BY l.id`
	rows, err := q.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		var (
			line     model.CartLine
			product  model.Product
			discount decimal.NullDecimal
		)
		err := rows.Scan(
			&line.ID, &line.CartID, &line.ProductID, &line.Quantity,
			&product.ID, &product.Name, &product.Slug, &product.Description,
			&product.Price, &discount, &product.Active, &product.InStock, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if discount.Valid {
			product.DiscountPrice = &discount.Decimal
		}
		line.Product = &product
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
