package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/types"
)

// TokenValidator is an interface for validating session tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware validates the accessToken cookie and stores the session
// claims in the request context. A missing or invalid cookie aborts with 401;
// no network or database call happens on the missing-cookie path.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(types.AccessTokenCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		if claims.CoupleID != nil {
			c.Set("couple_id", *claims.CoupleID)
		}
		c.Next()
	}
}
