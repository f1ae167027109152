package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmarkhas/gameshop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// OptionalUserID returns the identifier of an optionally authenticated
// caller, nil for anonymous visitors.
func OptionalUserID(c *gin.Context) *int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return nil
	}
	id, ok := val.(int64)
	if !ok {
		return nil
	}
	return &id
}

// CartToken returns the visitor cart token, nil when the session has none.
func CartToken(c *gin.Context) *uuid.UUID {
	val, ok := c.Get(middleware.CartTokenContextKey)
	if !ok {
		return nil
	}
	token, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &token
}
