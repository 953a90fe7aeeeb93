package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

const guestSessionTTL = 24 * time.Hour

// POST /auth/guest
// Issues an anonymous session id for cart operations before sign-in.
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := models.GuestSession{
			ID:        uuid.NewString(),
			ExpiresAt: time.Now().Add(guestSessionTTL),
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"session_id": session.ID,
			"expires_at": session.ExpiresAt,
		})
	}
}
