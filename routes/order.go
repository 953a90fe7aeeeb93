package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/order"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers customer-facing order endpoints. Orders can
// be placed by signed-in users and guest sessions alike.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// Realtime feed for the admin dashboard.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/orders")
	orders.Use(middleware.Identify)
	{
		orders.POST("/", orderControllers.CreateOrderHandler(db))
		orders.GET("/mine", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:orderID/dispute", orderControllers.DisputeOrderHandler(db))
		orders.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
	}
}
