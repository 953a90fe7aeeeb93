package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/cart"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers cart endpoints. Carts work for both signed-in
// users and guest sessions, so the group resolves either identity.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Identify)
	{
		cartGroup.GET("/", cartControllers.GetCart(db))
		cartGroup.POST("/items", cartControllers.AddCartItem(db))
		cartGroup.PUT("/:cart_id/items/:order_item_id/increase", cartControllers.IncreaseQuantity(db))
		cartGroup.PUT("/:cart_id/items/:order_item_id/decrease", cartControllers.DecreaseQuantity(db))
		cartGroup.DELETE("/:cart_id/items/:order_item_id", cartControllers.RemoveCartItem(db))
	}
}
