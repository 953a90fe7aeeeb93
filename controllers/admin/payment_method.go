package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

type PaymentMethodRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// POST /admin/payment-methods
func CreatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method := models.PaymentMethod{
			Name:        req.Name,
			Description: req.Description,
			Active:      true,
		}
		if req.Active != nil {
			method.Active = *req.Active
		}
		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A payment method with this name already exists"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// GET /payment-methods — customers see active methods only.
func GetPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Order("name")
		if c.Query("all") != "true" {
			q = q.Where("active = ?", true)
		}
		var methods []models.PaymentMethod
		if err := q.Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// PUT /admin/payment-methods/:id
func UpdatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var method models.PaymentMethod
		if err := db.First(&method, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		var req PaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		method.Name = req.Name
		method.Description = req.Description
		if req.Active != nil {
			method.Active = *req.Active
		}
		if err := db.Save(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment method"})
			return
		}
		c.JSON(http.StatusOK, method)
	}
}

// DELETE /admin/payment-methods/:id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.PaymentMethod{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
	}
}
