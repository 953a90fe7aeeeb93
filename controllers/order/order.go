package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/middleware"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CartID          int             `json:"cart_id" binding:"required"`
	Billing         models.Billing  `json:"billing" binding:"required"`
	PaymentMethodID uint            `json:"payment_method_id" binding:"required"`
	Delivery        models.Delivery `json:"delivery"`
}

type UpdateStatusRequest struct {
	OrderStatus       string `json:"order_status"`
	TransactionStatus string `json:"transaction_status"`
}

type UpdateTransactionStatusRequest struct {
	TransactionStatus string `json:"transaction_status" binding:"required"`
}

// -------- Core Logic --------

// CreateOrder snapshots the cart into a new pending/pending order inside a
// transaction, then deletes the cart. At most one order can ever reference a
// cart's pre-reserved order id.
func CreateOrder(db *gorm.DB, userID, sessionID string, req CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		q := tx.Preload("Items").Clauses(clause.Locking{Strength: "UPDATE"})
		if userID != "" {
			q = q.Where("cart_id = ? AND user_id = ?", req.CartID, userID)
		} else {
			q = q.Where("cart_id = ? AND session_id = ?", req.CartID, sessionID)
		}
		if err := q.First(&cart).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return errors.New("cart is empty")
		}

		var existing int64
		if err := tx.Model(&models.Order{}).Where("order_id = ?", cart.OrderID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errors.New("an order already exists for this cart")
		}

		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			// The order snapshot counts one free grant per minimum-purchase
			// multiple, without the per-offer quantity the cart applies.
			freeQty := 0
			if item.DiscountType == models.DiscountTypeFree && item.MinPurchaseQuantity > 0 {
				freeQty = item.Quantity / item.MinPurchaseQuantity
			}
			orderItems = append(orderItems, models.OrderItem{
				OrderItemID:         item.OrderItemID,
				ProductID:           item.ProductID,
				Name:                item.Name,
				Image:               item.Image,
				SellingPrice:        item.SellingPrice,
				DiscountedPrice:     item.DiscountedPrice,
				DiscountType:        item.DiscountType,
				Discount:            item.Discount,
				Quantity:            item.Quantity,
				TotalPrice:          item.TotalPrice,
				MinPurchaseQuantity: item.MinPurchaseQuantity,
				FreeQuantity:        freeQty,
				FreeItemDescription: item.FreeItemDescription,
			})
		}

		order = models.Order{
			OrderID:           cart.OrderID,
			UserID:            cart.UserID,
			SessionID:         cart.SessionID,
			TransactionID:     uuid.NewString(),
			Items:             orderItems,
			SubTotal:          cart.SubTotal,
			TotalDiscount:     cart.TotalDiscount,
			GrandTotal:        cart.GrandTotal,
			Billing:           req.Billing,
			PaymentMethodID:   req.PaymentMethodID,
			TransactionStatus: models.TransactionStatusPending,
			OrderStatus:       models.OrderStatusPending,
			Delivery:          req.Delivery,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "cart_id = ?", cart.CartID).Error
	})
	if err != nil {
		return nil, err
	}

	notifyOrder(db, &order, "Order placed",
		fmt.Sprintf("Your order #%d has been placed.", order.OrderID),
		fmt.Sprintf("New order #%d was placed.", order.OrderID))
	broadcastOrderEvent("order.created", order)
	return &order, nil
}

// notifyOrder fans out to the owning user (when resolvable) and every admin;
// delivery failures are logged, never propagated.
func notifyOrder(db *gorm.DB, order *models.Order, title, userMsg, adminMsg string) {
	meta := fmt.Sprintf(`{"order_id":%d}`, order.OrderID)
	if err := notificationControllers.Notify(db, order.UserID, title, userMsg, "order", meta); err != nil {
		log.Printf("order %d: user notification failed: %v", order.OrderID, err)
	}
	if err := notificationControllers.NotifyAdmins(db, title, adminMsg, "order", meta); err != nil {
		log.Printf("order %d: admin notification failed: %v", order.OrderID, err)
	}
}

func loadOrder(db *gorm.DB, c *gin.Context) (*models.Order, bool) {
	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
		return nil, false
	}
	var order models.Order
	if err := db.Preload("Items").First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return nil, false
	}
	return &order, true
}

func saveOrder(db *gorm.DB, order *models.Order) error {
	return db.Omit("Items").Save(order).Error
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := CreateOrder(db, userID, sessionID, req)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/mine
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)
		var orders []models.Order
		q := db.Preload("Items").Order("created_at DESC")
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		} else {
			q = q.Where("session_id = ?", sessionID)
		}
		if err := q.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status — moves either or both status axes.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.OrderStatus == "" && req.TransactionStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_status or transaction_status is required"})
			return
		}

		var change StatusChange
		if req.OrderStatus != "" {
			s, err := mapOrderStatus(req.OrderStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			change.OrderStatus = &s
		}
		if req.TransactionStatus != "" {
			s, err := mapTransactionStatus(req.TransactionStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			change.TransactionStatus = &s
		}

		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		prevStatus := order.OrderStatus

		if err := ApplyStatusChange(order, change, time.Now()); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := saveOrder(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		userMsg := fmt.Sprintf("Your order #%d is now %s.", order.OrderID, order.OrderStatus)
		if order.OrderStatus == models.OrderStatusDelivered && prevStatus != models.OrderStatusDelivered {
			userMsg = fmt.Sprintf(
				"Your order #%d was delivered. You have 24 hours to report a problem before the order completes.",
				order.OrderID)
		}
		notifyOrder(db, order, "Order updated", userMsg,
			fmt.Sprintf("Order #%d moved from %s to %s.", order.OrderID, prevStatus, order.OrderStatus))
		broadcastOrderEvent("order.updated", *order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/transaction-status
func UpdateTransactionStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateTransactionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s, err := mapTransactionStatus(req.TransactionStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		prevStatus := order.OrderStatus

		if err := ApplyStatusChange(order, StatusChange{TransactionStatus: &s}, time.Now()); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := saveOrder(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		notifyOrder(db, order, "Payment updated",
			fmt.Sprintf("Payment for order #%d is now %s.", order.OrderID, order.TransactionStatus),
			fmt.Sprintf("Order #%d payment %s (status %s -> %s).",
				order.OrderID, order.TransactionStatus, prevStatus, order.OrderStatus))
		broadcastOrderEvent("order.updated", *order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/dispute
func DisputeOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.Identity(c)

		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		if userID == "" || order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only dispute your own orders"})
			return
		}
		if err := Dispute(order, time.Now()); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := saveOrder(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		notifyOrder(db, order, "Order disputed",
			fmt.Sprintf("Your dispute for order #%d was received. Our team will reach out shortly.", order.OrderID),
			fmt.Sprintf("Order #%d was disputed by the buyer.", order.OrderID))
		broadcastOrderEvent("order.disputed", *order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/settle-dispute
func SettleDisputeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		SettleDispute(order, time.Now())
		if err := saveOrder(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		notifyOrder(db, order, "Dispute settled",
			fmt.Sprintf("The dispute on order #%d has been settled. A fresh 24 hour window applies.", order.OrderID),
			fmt.Sprintf("Dispute on order #%d was settled.", order.OrderID))
		broadcastOrderEvent("order.updated", *order)
		c.JSON(http.StatusOK, order)
	}
}

// PUT /orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, sessionID := middleware.Identity(c)
		role := c.GetString("role")
		isAdmin := role == "admin" || role == "super-admin"

		order, ok := loadOrder(db, c)
		if !ok {
			return
		}
		if !isAdmin {
			owns := (userID != "" && order.UserID == userID) ||
				(sessionID != "" && order.SessionID == sessionID)
			if !owns {
				c.JSON(http.StatusForbidden, gin.H{"error": "You can only cancel your own orders"})
				return
			}
		}
		if err := Cancel(order); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err := saveOrder(db, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		by := "the customer"
		if isAdmin {
			by = "an admin"
		}
		notifyOrder(db, order, "Order cancelled",
			fmt.Sprintf("Order #%d was cancelled by %s.", order.OrderID, by),
			fmt.Sprintf("Order #%d was cancelled by %s.", order.OrderID, by))
		broadcastOrderEvent("order.cancelled", *order)
		c.JSON(http.StatusOK, order)
	}
}
