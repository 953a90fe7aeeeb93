package returnsControllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	notificationControllers "github.com/Itohan1/ultimateBliss-back-office-sub000/controllers/notification"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

// POST /user/returns — multipart: order_id, reason, images[].
// Returns can only be opened against the caller's own delivered orders.
func CreateReturnRequest(db *gorm.DB, cfg config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.Atoi(c.PostForm("order_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id"})
			return
		}
		reason := c.PostForm("reason")
		if reason == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A reason is required"})
			return
		}

		var order models.Order
		if err := db.Where("order_id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.OrderStatus != models.OrderStatusDelivered && order.OrderStatus != models.OrderStatusCompleted {
			c.JSON(http.StatusConflict, gin.H{"error": "Returns can only be opened for delivered orders"})
			return
		}

		var open int64
		if err := db.Model(&models.ReturnRequest{}).
			Where("order_id = ? AND status IN ?", orderID,
				[]models.ReturnStatus{models.ReturnStatusRequested, models.ReturnStatusApproved}).
			Count(&open).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing returns"})
			return
		}
		if open > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "An open return already exists for this order"})
			return
		}

		request := models.ReturnRequest{
			OrderID: orderID,
			UserID:  userID,
			Reason:  reason,
			Status:  models.ReturnStatusRequested,
		}

		form, _ := c.MultipartForm()
		if form != nil {
			saveDir := filepath.Join(cfg.UploadsDir, "returns")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}
			for _, file := range form.File["images"] {
				filename := fmt.Sprintf("%d_%s", orderID, strings.ReplaceAll(file.Filename, " ", "_"))
				if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
					return
				}
				request.Images = append(request.Images, models.ReturnImage{
					URL: fmt.Sprintf("/uploads/returns/%s", filename),
				})
			}
		}

		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create return request"})
			return
		}

		if err := notificationControllers.NotifyAdmins(db, "Return requested",
			fmt.Sprintf("Return #%d opened for order #%d.", request.ID, orderID),
			"return", fmt.Sprintf(`{"return_id":%d,"order_id":%d}`, request.ID, orderID)); err != nil {
			log.Printf("return %d: admin notification failed: %v", request.ID, err)
		}

		c.JSON(http.StatusCreated, request)
	}
}

// GET /user/returns
func GetUserReturns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var requests []models.ReturnRequest
		if err := db.Preload("Images").Where("user_id = ?", userID).
			Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch returns"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// GET /admin/returns
func GetAllReturns(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Preload("Images").Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		var requests []models.ReturnRequest
		if err := q.Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch returns"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// PUT /admin/returns/:id/status
func UpdateReturnStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status := models.ReturnStatus(strings.ToLower(req.Status))
		switch status {
		case models.ReturnStatusApproved, models.ReturnStatusRejected, models.ReturnStatusReceived:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved, rejected or received"})
			return
		}

		var request models.ReturnRequest
		if err := db.First(&request, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Return request not found"})
			return
		}
		if request.Status == models.ReturnStatusRejected || request.Status == models.ReturnStatusReceived {
			c.JSON(http.StatusConflict, gin.H{"error": "Return request is already settled"})
			return
		}
		if status == models.ReturnStatusReceived && request.Status != models.ReturnStatusApproved {
			c.JSON(http.StatusConflict, gin.H{"error": "Only an approved return can be marked received"})
			return
		}

		request.Status = status
		if err := db.Save(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update return request"})
			return
		}

		if err := notificationControllers.Notify(db, request.UserID, "Return update",
			fmt.Sprintf("Your return for order #%d is now %s.", request.OrderID, request.Status),
			"return", fmt.Sprintf(`{"return_id":%d}`, request.ID)); err != nil {
			log.Printf("return %d: user notification failed: %v", request.ID, err)
		}

		c.JSON(http.StatusOK, request)
	}
}
