package auth

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	cartControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/cart"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

// POST /auth/request-otp
func RequestOTP(db *gorm.DB, mail *mailer.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		code, err := generateCode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate code"})
			return
		}
		otp := models.EmailOTP{
			Email:     email,
			Code:      code,
			ExpiresAt: time.Now().Add(otpTTL),
		}
		if err := db.Create(&otp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store code"})
			return
		}

		if err := mail.Send(c.Request.Context(), email, "Your sign-in code",
			fmt.Sprintf("<p>Your sign-in code is <strong>%s</strong>. It expires in 10 minutes.</p>", code)); err != nil {
			// Delivery is best-effort; the code stays valid.
			log.Printf("otp mail to %s failed: %v", email, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "A sign-in code has been sent to your email"})
	}
}

// POST /auth/verify-otp
// On first sign-in a fresh user id is minted for the account. A guest
// session presented alongside the code gets its carts merged into the
// user's cart.
func VerifyOTP(db *gorm.DB, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
			Code  string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and code are required"})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))

		var otp models.EmailOTP
		if err := db.Where("email = ? AND code = ? AND expires_at > ?", email, req.Code, time.Now()).
			Order("created_at DESC").First(&otp).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired code"})
			return
		}
		if err := db.Where("email = ?", email).Delete(&models.EmailOTP{}).Error; err != nil {
			log.Printf("clearing otps for %s failed: %v", email, err)
		}

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{ID: uuid.NewString(), Email: email}
			err = db.Create(&user).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
			return
		}

		token, err := GenerateUserToken(user.ID, cfg.JWTSecret, time.Duration(cfg.JWTExpireHrs)*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
			if err := cartControllers.MergeSessionCarts(db, sessionID, user.ID); err != nil {
				log.Printf("merging session %s into user %s failed: %v", sessionID, user.ID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
