package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/domain/model"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
)

// OrderHandler lists orders and lets staff move lines through fulfillment.
type OrderHandler struct {
	orders OrderFacade
	auth   AuthFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(orders OrderFacade, auth AuthFacade) *OrderHandler {
	return &OrderHandler{orders: orders, auth: auth}
}

// List handles GET /api/orders. Staff members see every order.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	staff, err := h.auth.IsStaff(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	orders, err := h.orders.Orders(c.Request.Context(), userID, staff)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderListResponse(orders))
}

// UpdateLineStatus handles PATCH /api/order-lines/:id. Staff only.
func (h *OrderHandler) UpdateLineStatus(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderLineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	status := model.OrderLineStatus(req.Status)
	if !model.ValidOrderLineStatus(status) {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.orders.UpdateOrderLineStatus(c.Request.Context(), lineID, status); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
