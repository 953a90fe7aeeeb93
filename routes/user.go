package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	bookingControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/booking"
	notificationControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	returnsControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/returns"
	userControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/user"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the JWT-protected "/user/*" endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))

		userGroup.GET("/notifications", notificationControllers.GetUserNotifications(db))
		userGroup.PUT("/notifications/:id/read", notificationControllers.MarkNotificationRead(db))

		bookingGroup := userGroup.Group("/bookings")
		{
			bookingGroup.POST("/", bookingControllers.CreateBooking(db))
			bookingGroup.GET("/", bookingControllers.GetUserBookings(db))
			bookingGroup.PUT("/:id/cancel", bookingControllers.CancelBookingHandler(db))
		}

		returnsGroup := userGroup.Group("/returns")
		{
			returnsGroup.POST("/", returnsControllers.CreateReturnRequest(db, cfg))
			returnsGroup.GET("/", returnsControllers.GetUserReturns(db))
		}
	}
}
