package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	adminController "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/admin"
	bookingControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/booking"
	categoryControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/category"
	contactControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/contact"
	inventoryControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/inventory"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront surface.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cfg config.App, mail *mailer.Client) {
	r.GET("/inventory", inventoryControllers.GetAllInventory(db))
	r.GET("/inventory/:id", inventoryControllers.GetInventoryByID(db))
	r.GET("/categories", categoryControllers.GetAllCategories(db))
	r.GET("/payment-methods", adminController.GetPaymentMethods(db))

	bookings := r.Group("/bookings")
	{
		bookings.GET("/plans", bookingControllers.GetPlans(db))
		bookings.GET("/timeslots", bookingControllers.GetTimeSlots(db))
	}

	r.POST("/contact", contactControllers.SubmitContactForm(db, mail, cfg))
}
