package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
	"github.com/dmarkhas/gameshop/internal/server/http/middleware"
)

// AuthHandler processes registration, login and the staff probe.
type AuthHandler struct {
	auth  AuthFacade
	carts CartFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(auth AuthFacade, carts CartFacade) *AuthHandler {
	return &AuthHandler{auth: auth, carts: carts}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/user/login. A successful login reconciles the
// visitor cart with the account's cart and rebinds the cart cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	userID, err := h.auth.ParseToken(token)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	cart, err := h.carts.MergeCarts(c.Request.Context(), userID, CartToken(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if cart != nil {
		middleware.SetCartCookie(c, cart.Token)
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// IsStaff handles GET /api/user/is-staff.
func (h *AuthHandler) IsStaff(c *gin.Context) {
	staff, err := h.auth.IsStaff(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.StaffResponse{IsStaff: staff})
}
