package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartTokenContextKey is a gin context key for the visitor cart token.
	CartTokenContextKey = "cartToken"
	cartCookieName      = "gameshop_cart"
)

// CartSession extracts the visitor cart token from its cookie. Malformed
// cookies are ignored: the visitor simply starts over with a fresh cart.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(cartCookieName); err == nil {
			if token, err := uuid.Parse(cookie); err == nil {
				c.Set(CartTokenContextKey, token)
			}
		}
		c.Next()
	}
}

// SetCartCookie binds the cart token to the visitor session.
func SetCartCookie(c *gin.Context, token uuid.UUID) {
	c.SetCookie(cartCookieName, token.String(), 0, "/", "", false, true)
}
