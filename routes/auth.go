package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/auth"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public sign-in flow.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.App, mail *mailer.Client) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(db))
		authGroup.POST("/request-otp", auth.RequestOTP(db, mail))
		authGroup.POST("/verify-otp", auth.VerifyOTP(db, cfg))
	}
}
