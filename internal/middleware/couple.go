package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duetly/backend/internal/models"
)

// RequireCouple gates routes that only make sense for a user with a linked
// couple. The couple link is read from the database rather than the session
// token, since tokens issued before onboarding predate the link. On success
// the couple ID is stored in the request context.
func RequireCouple(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		userID, ok := userIDVal.(uuid.UUID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			c.Abort()
			return
		}

		if user.CoupleID == nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "couple required",
				"message": "Create your couple site before using this feature",
			})
			c.Abort()
			return
		}

		c.Set("couple_id", *user.CoupleID)
		c.Next()
	}
}
