package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
	"github.com/dmarkhas/gameshop/internal/server/http/middleware"
)

// CartHandler serves cart endpoints for both visitors and logged-in users.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart. An absent cart reads as an empty one.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), OptionalUserID(c), CartToken(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoCart) {
			c.JSON(http.StatusOK, dto.CartResponse{Lines: []dto.CartLineResponse{}})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// Add handles POST /api/cart/add/:slug.
func (h *CartHandler) Add(c *gin.Context) {
	cart, err := h.facade.AddToCart(c.Request.Context(), OptionalUserID(c), CartToken(c), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetCartCookie(c, cart.Token)
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

// RemoveOne handles POST /api/cart/remove-one/:slug.
func (h *CartHandler) RemoveOne(c *gin.Context) {
	h.remove(c, h.facade.RemoveOneFromCart)
}

// Remove handles DELETE /api/cart/remove/:slug.
func (h *CartHandler) Remove(c *gin.Context) {
	h.remove(c, h.facade.RemoveFromCart)
}

// ApplyCoupon handles POST /api/cart/coupon.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.ApplyCoupon(c.Request.Context(), OptionalUserID(c), CartToken(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoCart):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrInvalidCoupon):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(cart))
}

func (h *CartHandler) remove(c *gin.Context, fn func(ctx context.Context, userID *int64, token *uuid.UUID, slug string) error) {
	err := fn(c.Request.Context(), OptionalUserID(c), CartToken(c), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoCart), errors.Is(err, domainErrors.ErrNotInCart):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}
