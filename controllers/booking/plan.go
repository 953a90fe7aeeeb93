package bookingControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/models"
	"gorm.io/gorm"
)

type PlanRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// POST /admin/plans
func CreatePlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		plan := models.ConsultationPlan{
			Name:            req.Name,
			Description:     req.Description,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
		}
		if err := db.Create(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

// GET /bookings/plans
func GetPlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plans []models.ConsultationPlan
		if err := db.Order("price").Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

// PUT /admin/plans/:id
func UpdatePlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plan models.ConsultationPlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		var req PlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		plan.Name = req.Name
		plan.Description = req.Description
		plan.Price = req.Price
		plan.DurationMinutes = req.DurationMinutes
		if err := db.Save(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// DELETE /admin/plans/:id
func DeletePlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.ConsultationPlan{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
	}
}
