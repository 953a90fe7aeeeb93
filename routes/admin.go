package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	adminController "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/admin"
	bookingControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/booking"
	cartControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/cart"
	categoryControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/category"
	discountControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/discount"
	inventoryControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/inventory"
	notificationControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	orderControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/order"
	returnsControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/returns"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office surface. Registration and
// login are public; everything else needs an admin token, and account
// management needs super-admin.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	admin := r.Group("/admin")

	admin.POST("/register", adminController.RegisterAdmin(db))
	admin.POST("/login", adminController.LoginAdmin(db, cfg))

	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin)
	{
		inventory := protected.Group("/inventory")
		{
			inventory.POST("/", inventoryControllers.CreateInventory(db, cfg))
			inventory.PUT("/:id", inventoryControllers.UpdateInventory(db, cfg))
			inventory.DELETE("/:id", inventoryControllers.DeleteInventory(db))
			inventory.POST("/import", inventoryControllers.ImportInventoryFromExcel(db))
			inventory.GET("/export", inventoryControllers.ExportInventoryToExcel(db))
		}

		categories := protected.Group("/categories")
		{
			categories.POST("/", categoryControllers.CreateCategory(db))
			categories.PUT("/:id", categoryControllers.UpdateCategory(db))
			categories.DELETE("/:id", categoryControllers.DeleteCategory(db))
		}

		discounts := protected.Group("/discounts")
		{
			discounts.POST("/apply", discountControllers.ApplyDiscount(db))
			discounts.POST("/remove", discountControllers.RemoveDiscount(db))
		}

		orders := protected.Group("/orders")
		{
			orders.GET("/", orderControllers.GetAllOrdersHandler(db))
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orders.PUT("/:orderID/transaction-status", orderControllers.UpdateTransactionStatusHandler(db))
			orders.PUT("/:orderID/settle-dispute", orderControllers.SettleDisputeHandler(db))
			orders.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("/", bookingControllers.GetAllBookings(db))
			bookings.PUT("/:id/status", bookingControllers.UpdateBookingStatus(db))
			bookings.PUT("/:id/cancel", bookingControllers.CancelBookingHandler(db))
			bookings.POST("/expire", bookingControllers.ExpireOverdueBookingsHandler(db))
		}

		plans := protected.Group("/plans")
		{
			plans.POST("/", bookingControllers.CreatePlan(db))
			plans.PUT("/:id", bookingControllers.UpdatePlan(db))
			plans.DELETE("/:id", bookingControllers.DeletePlan(db))
		}

		timeslots := protected.Group("/timeslots")
		{
			timeslots.POST("/", bookingControllers.CreateTimeSlot(db))
			timeslots.PUT("/:id", bookingControllers.UpdateTimeSlot(db))
			timeslots.DELETE("/:id", bookingControllers.DeleteTimeSlot(db))
		}

		returns := protected.Group("/returns")
		{
			returns.GET("/", returnsControllers.GetAllReturns(db))
			returns.PUT("/:id/status", returnsControllers.UpdateReturnStatus(db))
		}

		methods := protected.Group("/payment-methods")
		{
			methods.POST("/", adminController.CreatePaymentMethod(db))
			methods.PUT("/:id", adminController.UpdatePaymentMethod(db))
			methods.DELETE("/:id", adminController.DeletePaymentMethod(db))
		}

		protected.GET("/carts/:user_id", cartControllers.GetAdminUserCart(db))
		protected.GET("/notifications", notificationControllers.GetAdminNotifications(db))
	}

	super := admin.Group("/admins")
	super.Use(middleware.RequireSuperAdmin)
	{
		super.GET("/", adminController.GetAllAdmins(db))
		super.GET("/pending", adminController.GetPendingAdmins(db))
		super.PUT("/:id/approve", adminController.ApproveAdmin(db))
		super.DELETE("/:id", adminController.RemoveAdmin(db))
	}
}
