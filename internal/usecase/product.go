package usecase

import (
	"context"
	"log/slog"

	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// Suggester returns products frequently bought together with the given one.
type Suggester interface {
	Suggest(ctx context.Context, productID int64, maxResults int) ([]model.Product, error)
}

// ProductUseCase serves the catalog and per-product suggestions.
type ProductUseCase struct {
	products       repository.ProductRepository
	suggester      Suggester
	maxSuggestions int
	logger         *slog.Logger
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, suggester Suggester, maxSuggestions int, logger *slog.Logger) *ProductUseCase {
	return &ProductUseCase{
		products:       products,
		suggester:      suggester,
		maxSuggestions: maxSuggestions,
		logger:         logger,
	}
}

// Create adds a catalog entry. Intended for staff callers only.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return u.products.Create(ctx, product)
}

// ListActive returns the browsable catalog.
func (u *ProductUseCase) ListActive(ctx context.Context) ([]model.Product, error) {
	return u.products.ListActive(ctx)
}

// GetBySlug returns one product by its slug.
func (u *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return u.products.GetBySlug(ctx, slug)
}

// Suggestions returns co-purchase suggestions for a product, padded with a
// random sample of other in-stock products when the signal is thin.
func (u *ProductUseCase) Suggestions(ctx context.Context, slug string) ([]model.Product, error) {
	product, err := u.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var suggested []model.Product
	if u.suggester != nil {
		suggested, err = u.suggester.Suggest(ctx, product.ID, u.maxSuggestions)
		if err != nil {
			u.logger.Warn("suggestion lookup failed",
				slog.String("slug", slug),
				slog.String("error", err.Error()),
			)
			suggested = nil
		}
	}
	if len(suggested) >= u.maxSuggestions {
		return suggested[:u.maxSuggestions], nil
	}

	exclude := make([]int64, 0, len(suggested)+1)
	exclude = append(exclude, product.ID)
	for _, p := range suggested {
		exclude = append(exclude, p.ID)
	}
	fill, err := u.products.RandomSample(ctx, u.maxSuggestions-len(suggested), exclude)
	if err != nil {
		u.logger.Warn("random sample failed",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
		return suggested, nil
	}
	return append(suggested, fill...), nil
}
