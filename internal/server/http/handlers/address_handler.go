package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
)

// AddressHandler manages the authenticated user's address book.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler creates AddressHandler instance.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// List handles GET /api/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressListResponse(addresses))
}

// Create handles POST /api/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	saved, err := h.facade.SaveAddress(c.Request.Context(), req.Model(CurrentUserID(c)))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAddressResponse(*saved))
}

// Delete handles DELETE /api/addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	addressID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentUserID(c), addressID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
