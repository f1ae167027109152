package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dmarkhas/gameshop/internal/domain/model"
)

// ProductResponse is a catalog entry as exposed over the API.
type ProductResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	InStock       bool             `json:"in_stock"`
}

// NewProductResponse maps a product to its API shape.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		InStock:       p.InStock,
	}
}

// NewProductListResponse maps a product slice to its API shape.
func NewProductListResponse(products []model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, NewProductResponse(p))
	}
	return result
}

// CreateProductRequest describes a new catalog entry.
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Slug          string           `json:"slug" binding:"required"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Active        bool             `json:"active"`
	InStock       bool             `json:"in_stock"`
}

// Model converts the request into the domain product.
func (r CreateProductRequest) Model() *model.Product {
	return &model.Product{
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		Active:        r.Active,
		InStock:       r.InStock,
	}
}
