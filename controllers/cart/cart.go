package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/pricing"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// findCart resolves a cart by id and identity. Carts belong to exactly one
// identity, so the lookup is scoped to whichever of userID/sessionID is set.
func findCart(db *gorm.DB, cartID int, userID, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	q := db.Preload("Items")
	if userID != "" {
		q = q.Where("cart_id = ? AND user_id = ?", cartID, userID)
	} else {
		q = q.Where("cart_id = ? AND session_id = ?", cartID, sessionID)
	}
	if err := q.First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// findOrCreateCart returns the identity's cart, creating one lazily with
// pre-reserved cart and order ids.
func findOrCreateCart(db *gorm.DB, userID, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	q := db.Preload("Items")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	} else {
		q = q.Where("session_id = ?", sessionID)
	}
	err := q.First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cartID, err := models.NextSequence(db, "cart_id")
	if err != nil {
		return nil, err
	}
	orderID, err := models.NextSequence(db, "order_id")
	if err != nil {
		return nil, err
	}
	cart = models.Cart{CartID: cartID, UserID: userID, SessionID: sessionID, OrderID: orderID}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func saveTotals(db *gorm.DB, cart *models.Cart) error {
	return db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Updates(map[string]interface{}{
		"sub_total":      cart.SubTotal,
		"total_discount": cart.TotalDiscount,
		"grand_total":    cart.GrandTotal,
	}).Error
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Inventory
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := findOrCreateCart(db, userID, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		// Existing line: bump quantity by one.
		for i := range cart.Items {
			if cart.Items[i].ProductID == input.ProductID {
				cart.Items[i].Quantity++
				pricing.NormalizeItemPrices(&cart.Items[i])
				pricing.CalculateTotals(cart)
				if err := db.Save(&cart.Items[i]).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
					return
				}
				if err := saveTotals(db, cart); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart totals"})
					return
				}
				c.JSON(http.StatusOK, cart)
				return
			}
		}

		orderItemID, err := models.NextSequence(db, "order_item_id")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate item id"})
			return
		}

		item := models.CartItem{
			OrderItemID:         orderItemID,
			CartID:              cart.CartID,
			ProductID:           product.ID,
			Name:                product.Name,
			Image:               product.Image,
			SellingPrice:        product.Pricing.SellingPrice,
			DiscountType:        product.Pricing.DiscountType,
			Discount:            product.Pricing.Discount,
			Quantity:            1,
			MinPurchaseQuantity: product.Pricing.FreeOffer.MinQuantityOfPurchase,
			FreeItemQuantity:    product.Pricing.FreeOffer.FreeItemQuantity,
			FreeItemDescription: product.Pricing.FreeOffer.FreeItemDescription,
			AddedAt:             time.Now(),
		}
		pricing.NormalizeItemPrices(&item)
		cart.Items = append(cart.Items, item)
		pricing.CalculateTotals(cart)

		if err := db.Create(&cart.Items[len(cart.Items)-1]).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		if err := saveTotals(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart totals"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// changeQuantity applies delta to a single line; decrease floors at 1.
func changeQuantity(db *gorm.DB, c *gin.Context, delta int) {
	userID, sessionID := middleware.Identity(c)

	cartID, err := strconv.Atoi(c.Param("cart_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart_id"})
		return
	}
	orderItemID, err := strconv.Atoi(c.Param("order_item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_item_id"})
		return
	}

	cart, err := findCart(db, cartID, userID, sessionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	for i := range cart.Items {
		if cart.Items[i].OrderItemID != orderItemID {
			continue
		}
		cart.Items[i].Quantity += delta
		if cart.Items[i].Quantity < 1 {
			cart.Items[i].Quantity = 1
		}
		pricing.NormalizeItemPrices(&cart.Items[i])
		pricing.CalculateTotals(cart)
		if err := db.Save(&cart.Items[i]).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if err := saveTotals(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart totals"})
			return
		}
		c.JSON(http.StatusOK, cart)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
}

// PUT /cart/:cart_id/items/:order_item_id/increase
func IncreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { changeQuantity(db, c, 1) }
}

// PUT /cart/:cart_id/items/:order_item_id/decrease
func DecreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) { changeQuantity(db, c, -1) }
}

// DELETE /cart/:cart_id/items/:order_item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)

		cartID, err := strconv.Atoi(c.Param("cart_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart_id"})
			return
		}
		orderItemID, err := strconv.Atoi(c.Param("order_item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_item_id"})
			return
		}

		cart, err := findCart(db, cartID, userID, sessionID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		result := db.Where("cart_id = ? AND order_item_id = ?", cart.CartID, orderItemID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.OrderItemID != orderItemID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
		pricing.CalculateTotals(cart)
		if err := saveTotals(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart totals"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)

		var cart models.Cart
		q := db.Preload("Items")
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		} else {
			q = q.Where("session_id = ?", sessionID)
		}
		if err := q.First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /admin/carts/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
