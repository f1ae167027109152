package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
)

// CheckoutHandler drives the two-step checkout: order creation, then payment.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// CreateOrder handles POST /api/checkout/order. Re-running it before payment
// refreshes the addresses on the pending order instead of creating another.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), req.ShippingAddressID, req.BillingAddressID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoDefaultAddress):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Pay handles POST /api/checkout/pay.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	order, err := h.facade.Pay(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoCart),
			errors.Is(err, domainErrors.ErrEmptyCart),
			errors.Is(err, domainErrors.ErrNoPendingOrder):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}
