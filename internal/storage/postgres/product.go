package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
)

const productColumns = `id, name, slug, description, price, discount_price, active, in_stock, updated_at`

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, slug, description, price, discount_price, active, in_stock)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, updated_at`
	var discount decimal.NullDecimal
	if product.DiscountPrice != nil {
		discount = decimal.NullDecimal{Decimal: *product.DiscountPrice, Valid: true}
	}
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Slug, product.Description,
		product.Price, discount, product.Active, product.InStock,
	).Scan(&created.ID, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY name`
	return r.list(ctx, query)
}

func (r *productRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	return r.list(ctx, query, ids)
}

func (r *productRepository) RandomSample(ctx context.Context, limit int, exclude []int64) ([]model.Product, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products
		WHERE active AND in_stock AND NOT (id = ANY($2))
		ORDER BY RANDOM() LIMIT $1`
	if exclude == nil {
		exclude = []int64{}
	}
	return r.list(ctx, query, limit, exclude)
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p        model.Product
		discount decimal.NullDecimal
	)
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &discount, &p.Active, &p.InStock, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if discount.Valid {
		p.DiscountPrice = &discount.Decimal
	}
	return &p, nil
}
