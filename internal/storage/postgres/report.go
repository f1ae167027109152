package postgres

import (
	"context"
	"time"

	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

func (r *reportRepository) OrdersPerDay(ctx context.Context, since time.Time) ([]repository.OrdersPerDay, error) {
	const query = `SELECT date_trunc('day', p.paid_at) AS day, COUNT(o.id)
                   FROM orders o
                   JOIN payments p ON p.id = o.payment_id
                   WHERE o.status IN ('PAID', 'DONE') AND p.paid_at > $1
                   GROUP BY day
                   ORDER BY day`
	rows, err := r.storage.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.OrdersPerDay
	for rows.Next() {
		var row repository.OrdersPerDay
		if err := rows.Scan(&row.Day, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reportRepository) MostBoughtProducts(ctx context.Context, since time.Time) ([]repository.ProductPurchases, error) {
	const query = `SELECT pr.name, COUNT(l.id) AS purchases
                   FROM order_lines l
                   JOIN orders o ON o.id = l.order_id
                   JOIN products pr ON pr.id = l.product_id
                   WHERE o.status IN ('PAID', 'DONE') AND o.created_at > $1
                   GROUP BY pr.name
                   ORDER BY purchases DESC, pr.name`
	rows, err := r.storage.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.ProductPurchases
	for rows.Next() {
		var row repository.ProductPurchases
		if err := rows.Scan(&row.ProductName, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
