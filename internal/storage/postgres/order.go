package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

const orderColumns = `id, user_id, status, shipping_address_id, billing_address_id, payment_id, created_at, updated_at`

func (r *orderRepository) UpsertNew(ctx context.Context, userID int64, shippingAddressID, billingAddressID *int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectPending = `SELECT id FROM orders WHERE user_id=$1 AND status='NEW' FOR UPDATE`
		var orderID int64
		err := tx.QueryRow(ctx, selectPending, userID).Scan(&orderID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			const insert = `INSERT INTO orders (user_id, status, shipping_address_id, billing_address_id)
                            VALUES ($1, 'NEW', $2, $3)
                            RETURNING ` + orderColumns
			order, err = scanOrder(tx.QueryRow(ctx, insert, userID, shippingAddressID, billingAddressID))
			return err
		}

		// Checkout is idempotent per user: an existing pending order just
		// takes the latest addresses.
		const update = `UPDATE orders SET shipping_address_id=$1, billing_address_id=$2, updated_at=NOW()
                        WHERE id=$3
                        RETURNING ` + orderColumns
		order, err = scanOrder(tx.QueryRow(ctx, update, shippingAddressID, billingAddressID, orderID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetNewByUser(ctx context.Context, userID int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND status='NEW'`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) SubmitCart(ctx context.Context, cartID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) (err error) {
		order, err = submitCartTx(ctx, tx, cartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// submitCartTx copies the cart's lines onto the owner's pending order and
// flips the cart to SUBMITTED. Callers own the transaction boundary.
func submitCartTx(ctx context.Context, tx pgx.Tx, cartID int64) (*model.Order, error) {
	const selectCart = `SELECT user_id FROM carts WHERE id=$1 AND status='OPEN' FOR UPDATE`
	var userID *int64
	if err := tx.QueryRow(ctx, selectCart, cartID).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNoCart
		}
		return nil, err
	}
	if userID == nil {
		return nil, domainErrors.ErrNoPendingOrder
	}

	const selectPending = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND status='NEW' FOR UPDATE`
	order, err := scanOrder(tx.QueryRow(ctx, selectPending, *userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNoPendingOrder
		}
		return nil, err
	}

	const materialize = `INSERT INTO order_lines (order_id, product_id, quantity, status)
                         SELECT $1, product_id, quantity, 'PROCESSING' FROM cart_lines WHERE cart_id=$2`
	if _, err := tx.Exec(ctx, materialize, order.ID, cartID); err != nil {
		return nil, err
	}

	const submit = `UPDATE carts SET status='SUBMITTED', updated_at=NOW() WHERE id=$1`
	if _, err := tx.Exec(ctx, submit, cartID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) FinalizeCheckout(ctx context.Context, cartID int64) (*repository.CheckoutResult, error) {
	var result repository.CheckoutResult
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectCart = `SELECT c.user_id, co.amount
                            FROM carts c
                            LEFT JOIN coupons co ON co.id = c.coupon_id
                            WHERE c.id=$1 AND c.status='OPEN' FOR UPDATE OF c`
		var (
			userID *int64
			coupon decimal.NullDecimal
		)
		if err := tx.QueryRow(ctx, selectCart, cartID).Scan(&userID, &coupon); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNoCart
			}
			return err
		}
		if userID == nil {
			return domainErrors.ErrNoPendingOrder
		}

		const sumLines = `SELECT COALESCE(SUM(COALESCE(p.discount_price, p.price) * l.quantity), 0),
                                 COALESCE(ARRAY_AGG(l.product_id), '{}')
                          FROM cart_lines l
                          JOIN products p ON p.id = l.product_id
                          WHERE l.cart_id=$1`
		var total decimal.Decimal
		if err := tx.QueryRow(ctx, sumLines, cartID).Scan(&total, &result.ProductIDs); err != nil {
			return err
		}
		if len(result.ProductIDs) == 0 {
			return domainErrors.ErrEmptyCart
		}
		if coupon.Valid {
			total = total.Sub(coupon.Decimal)
		}

		order, err := submitCartTx(ctx, tx, cartID)
		if err != nil {
			return err
		}

		const insertPayment = `INSERT INTO payments (user_id, amount) VALUES ($1, $2) RETURNING id, paid_at`
		payment := model.Payment{UserID: userID, Amount: total}
		if err := tx.QueryRow(ctx, insertPayment, *userID, total).Scan(&payment.ID, &payment.PaidAt); err != nil {
			return err
		}

		const markPaid = `UPDATE orders SET status='PAID', payment_id=$1, updated_at=NOW()
                          WHERE id=$2
                          RETURNING ` + orderColumns
		paid, err := scanOrder(tx.QueryRow(ctx, markPaid, payment.ID, order.ID))
		if err != nil {
			return err
		}

		const dropCart = `DELETE FROM carts WHERE id=$1`
		if _, err := tx.Exec(ctx, dropCart, cartID); err != nil {
			return err
		}

		result.Order = paid
		result.Payment = &payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) UpdateLineStatus(ctx context.Context, lineID int64, status model.OrderLineStatus) error {
	const query = `UPDATE order_lines SET status=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders []model.Order
		ids    []int64
	)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	linesByOrder, err := r.loadOrderLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = linesByOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *orderRepository) loadOrderLines(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderLine, error) {
	const query = `SELECT l.id, l.order_id, l.product_id, l.quantity, l.status,
                          p.id, p.name, p.slug, p.description, p.price, p.discount_price, p.active, p.in_stock, p.updated_at
                   FROM order_lines l
                   JOIN products p ON p.id = l.product_id
                   WHERE l.order_id = ANY($1)
                   ORDER BY l.id`
	rows, err := r.storage.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]model.OrderLine)
	for rows.Next() {
		var (
			line     model.OrderLine
			product  model.Product
			discount decimal.NullDecimal
		)
		err := rows.Scan(
			&line.ID, &line.OrderID, &line.ProductID, &line.Quantity, &line.Status,
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
		result[line.OrderID] = append(result[line.OrderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.ShippingAddressID, &o.BillingAddressID, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
