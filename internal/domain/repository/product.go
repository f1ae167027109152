package repository

import (
	"context"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	// RandomSample returns up to limit random in-stock products, skipping
	// the excluded identifiers.
	RandomSample(ctx context.Context, limit int, exclude []int64) ([]model.Product, error)
}
