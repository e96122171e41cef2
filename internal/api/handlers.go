package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// The bool reports whether one was present; the handler has already replied
// 401 when it was not.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

// currentCoupleID reads the couple ID set by the RequireCouple middleware.
func currentCoupleID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("couple_id")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "couple required"})
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "couple required"})
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a :id path parameter as a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
